package birthday

import (
	"cmp"
	"fmt"
)

// Birthday is a tracked birthday entry.
// Corresponds to the 'birthdays' table; ExternalID is the chat-platform user ID of the subject.
type Birthday struct {
	ExternalID  string
	DisplayName string
	Month       int // 1-12
	Day         int // 1-31, not checked against month length
}

// Date formats the entry as mm/dd.
func (b Birthday) Date() string {
	return fmt.Sprintf("%02d/%02d", b.Month, b.Day)
}

// compare orders birthdays by (month, day).
func compare(a, b *Birthday) int {
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

// before reports whether b sorts strictly before o in (month, day) order.
func (b Birthday) before(o Birthday) bool {
	return compare(&b, &o) < 0
}
