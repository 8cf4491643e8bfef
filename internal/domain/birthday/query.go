// internal/domain/birthday/query.go
package birthday

import "slices"

// DefaultNextCount is how many entries NextUpcoming returns when no count is configured.
const DefaultNextCount = 3

// Sorted returns a copy of entries ordered by (month, day). Ties keep their input order.
func Sorted(entries []*Birthday) []*Birthday {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, compare)
	return out
}

// TodayMatches returns the entries falling exactly on month/day.
func TodayMatches(entries []*Birthday, month, day int) []*Birthday {
	matches := make([]*Birthday, 0)
	for _, b := range entries {
		if b.Month == month && b.Day == day {
			matches = append(matches, b)
		}
	}
	return matches
}

// MonthMatches returns the entries in month, ordered by day.
func MonthMatches(entries []*Birthday, month int) []*Birthday {
	matches := make([]*Birthday, 0)
	for _, b := range Sorted(entries) {
		if b.Month == month {
			matches = append(matches, b)
		}
	}
	return matches
}

// NextUpcoming returns up to count entries on or after month/day, treating the calendar as
// circular: when the rest of the year holds fewer than count entries the selection continues
// from January. An entry is never returned twice.
func NextUpcoming(entries []*Birthday, month, day, count int) []*Birthday {
	if count <= 0 {
		return []*Birthday{}
	}
	ordered := Sorted(entries)
	pivot := Birthday{Month: month, Day: day}

	result := make([]*Birthday, 0, min(count, len(ordered)))
	seen := make(map[string]struct{}, count)
	take := func(b *Birthday) {
		if _, dup := seen[b.ExternalID]; dup {
			return
		}
		seen[b.ExternalID] = struct{}{}
		result = append(result, b)
	}

	for _, b := range ordered {
		if len(result) == count {
			return result
		}
		if !b.before(pivot) {
			take(b)
		}
	}

	// Wrap around to the start of the year.
	for _, b := range ordered {
		if len(result) == count {
			break
		}
		take(b)
	}
	return result
}
