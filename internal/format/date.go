// Package format renders link fields for display: relative dates, domain
// labels and terminal-safe text.
package format

import (
	"fmt"
	"strings"
	"time"
)

// CalendarLayout is used for links a year old or more.
const CalendarLayout = "Jan 2, 2006"

const day = 24 * time.Hour

// RelativeDate describes created relative to now. Day buckets use whole
// elapsed days; weeks and months are floored, so ten days reads "1 weeks ago".
// Timestamps in the future read "Today".
func RelativeDate(created, now time.Time) string {
	diff := now.Sub(created)
	if diff < 0 {
		return "Today"
	}
	days := int(diff / day)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	}
	return created.In(now.Location()).Format(CalendarLayout)
}

// LinkDate formats a raw createdAt value. Unparseable values are shown as-is.
func LinkDate(raw string, created time.Time, ok bool, now time.Time) string {
	if ok {
		return RelativeDate(created, now)
	}
	if strings.TrimSpace(raw) == "" {
		return "Unknown date"
	}
	return raw
}
