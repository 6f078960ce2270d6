package traffic

import (
	"fmt"
	"time"
)

// Minutes is a time of day expressed as minutes since midnight, or NoFilter.
type Minutes int

// NoFilter is the sentinel for an inactive time filter. FilterByTime treats
// it as the identity.
const NoFilter Minutes = -1

// MinutesPerDay is the exclusive upper bound for an active filter value.
const MinutesPerDay = 24 * 60

// window is the half-width of the filter window on either side of the center.
const window Minutes = 60

// Valid reports whether m is NoFilter or a real time of day.
func (m Minutes) Valid() bool {
	return m == NoFilter || (m >= 0 && m < MinutesPerDay)
}

// Active reports whether m narrows the trip set.
func (m Minutes) Active() bool {
	return m != NoFilter
}

// Format renders m as a 12-hour clock time such as "10:05 AM". Midnight is
// "12:00 AM", noon "12:00 PM". NoFilter formats as "any time".
func (m Minutes) Format() string {
	if m == NoFilter {
		return "any time"
	}
	hour := int(m) / 60
	minute := int(m) % 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// MinutesOfDay extracts the time-of-day component of t. The calendar date is
// discarded, which is what makes the filter window date-independent.
func MinutesOfDay(t time.Time) Minutes {
	return Minutes(t.Hour()*60 + t.Minute())
}
