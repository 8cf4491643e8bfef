package telegram

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"birthday_notification_bot/internal/domain/birthday"
	"birthday_notification_bot/internal/domain/notification"
)

const (
	todayTitle = "🎊 HAPPY BIRTHDAY TO 🎊"
	listTitle  = "All Birthdays"
	emptyList  = "No Birthdays in Database"
	emptyNext  = "No upcoming birthdays."
	nextTitle  = "Upcoming Birthdays"
)

// mention links a numeric Telegram user ID; any other reference is shown as-is.
func mention(subjectRef string) string {
	if _, err := strconv.ParseInt(subjectRef, 10, 64); err == nil {
		return fmt.Sprintf(`<a href="tg://user?id=%s">%s</a>`, subjectRef, subjectRef)
	}
	return html.EscapeString(subjectRef)
}

func renderToday(p notification.TodayPayload) string {
	var sb strings.Builder
	sb.WriteString("<b>" + todayTitle + "</b>\n")
	for _, e := range p.Entries {
		sb.WriteString(fmt.Sprintf("%s: %s\n", html.EscapeString(e.Name), mention(e.SubjectRef)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderMonthly(p notification.MonthlyPayload) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>🎊 %s BIRTHDAYS 🎊</b>\n", strings.ToUpper(p.MonthLabel)))
	for _, e := range p.Entries {
		sb.WriteString(fmt.Sprintf("%s: %02d/%02d\n", html.EscapeString(e.Name), e.Month, e.Day))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderList and renderNext produce plain-text replies.
func renderList(entries []*birthday.Birthday) string {
	if len(entries) == 0 {
		return emptyList
	}
	var sb strings.Builder
	sb.WriteString(listTitle + "\n\n")
	for _, b := range entries {
		sb.WriteString(fmt.Sprintf("%s: %s\n", b.DisplayName, b.Date()))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderNext(entries []*birthday.Birthday) string {
	if len(entries) == 0 {
		return emptyNext
	}
	var sb strings.Builder
	sb.WriteString(nextTitle + "\n\n")
	for _, b := range entries {
		sb.WriteString(fmt.Sprintf("%s: %s\n", b.DisplayName, b.Date()))
	}
	return strings.TrimRight(sb.String(), "\n")
}
