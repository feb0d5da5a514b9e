package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// StampLayout defines the human-readable feed timestamp format.
const StampLayout = "2006-01-02 03:04 PM"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatStamp formats a time for the feed's last_updated field.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}

// LooksLikeClock reports whether a string resembles a 12-hour clock time
// ("7:30 PM"), i.e. contains a colon and an am/pm marker.
func LooksLikeClock(value string) bool {
	lowered := strings.ToLower(value)
	if !strings.Contains(lowered, ":") {
		return false
	}
	return strings.Contains(lowered, "am") || strings.Contains(lowered, "pm")
}

// ClockMinutes converts a 12-hour clock string ("7:30 PM") to minutes since
// midnight for ordering. Unparseable input returns ok=false; callers should
// sort such values last.
func ClockMinutes(value string) (int, bool) {
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) < 2 {
		return 0, false
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, false
	}

	return hour*60 + minute, true
}
