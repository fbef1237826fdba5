package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"micfinder/config"
	"micfinder/models"
)

var (
	twentyFourHourRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	twelveHourRe     = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	dollarAmountRe   = regexp.MustCompile(`\$(\d+)`)
)

// ParseClockMinutes parses a 24-hour ("HH:MM") or 12-hour ("h:mm AM/PM")
// clock string to minutes since midnight. ok is false when the string is in
// neither format.
func ParseClockMinutes(timeStr string) (int, bool) {
	if timeStr == "" {
		return 0, false
	}

	if m := twentyFourHourRe.FindStringSubmatch(timeStr); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes, true
	}

	if m := twelveHourRe.FindStringSubmatch(timeStr); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		modifier := strings.ToUpper(m[3])
		if modifier == "PM" && hours < 12 {
			hours += 12
		}
		if modifier == "AM" && hours == 12 {
			hours = 0
		}
		return hours*60 + minutes, true
	}

	return 0, false
}

// GetMinutes is ParseClockMinutes with a zero fallback for unparseable
// strings. Used for filter window bounds, where a broken bound should not
// hide the whole catalog.
func GetMinutes(timeStr string) int {
	mins, _ := ParseClockMinutes(timeStr)
	return mins
}

// FormatMinutes renders minutes since midnight as "h:mm AM/PM".
func FormatMinutes(mins int) string {
	if mins < 0 {
		return ""
	}
	hours := (mins / 60) % 24
	minutes := mins % 60
	modifier := "AM"
	if hours >= 12 {
		modifier = "PM"
	}
	if hours > 12 {
		hours -= 12
	}
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, modifier)
}

// GetCostValue derives a numeric cost for sorting: free = 0, a drink
// minimum = 5, an explicit dollar amount = that amount, anything else the
// unknown sentinel so it sorts last.
func GetCostValue(costStr string) int {
	if costStr == "" {
		return config.UNKNOWN_COST_SENTINEL
	}
	lower := strings.ToLower(costStr)
	if lower == "free" {
		return 0
	}
	if strings.Contains(lower, "drink") {
		return 5
	}
	if m := dollarAmountRe.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		return amount
	}
	return config.UNKNOWN_COST_SENTINEL
}

// MinutesOfDay returns the wall-clock minutes since midnight for now.
func MinutesOfDay(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}

// DayName returns the weekday name ("Monday") for now.
func DayName(now time.Time) string {
	return now.Weekday().String()
}

// IsHappeningNow reports whether the mic is today and started within the
// last 30 minutes.
func IsHappeningNow(mic models.MicEvent, now time.Time) bool {
	if mic.StartMinutes < 0 || !strings.EqualFold(mic.Day, DayName(now)) {
		return false
	}
	nowMins := MinutesOfDay(now)
	return nowMins >= mic.StartMinutes && nowMins < mic.StartMinutes+config.GRACE_WINDOW_MINUTES
}

// IsStartingSoon reports whether the mic is today and starts within the
// next two hours.
func IsStartingSoon(mic models.MicEvent, now time.Time) bool {
	if mic.StartMinutes < 0 || !strings.EqualFold(mic.Day, DayName(now)) {
		return false
	}
	delta := mic.StartMinutes - MinutesOfDay(now)
	return delta > 0 && delta <= 120
}
