package calendar

import (
	"fmt"
	"time"
)

// TimeOption is one pickable time of day: a 24-hour sortable key plus a
// 12-hour display label ("14:30" / "2:30 pm").
type TimeOption struct {
	Value string
	Label string
}

// TimeOptions enumerates every time from min to max inclusive, stepping by
// interval minutes. Both limits are "HH:mm". An inverted window, a malformed
// limit, or a non-positive interval yields an empty sequence, never an error.
func TimeOptions(min, max string, interval int) []TimeOption {
	if interval <= 0 {
		return nil
	}
	lo, err := time.Parse("15:04", min)
	if err != nil {
		return nil
	}
	hi, err := time.Parse("15:04", max)
	if err != nil {
		return nil
	}
	if lo.After(hi) {
		return nil
	}
	var out []TimeOption
	for t := lo; !t.After(hi); t = t.Add(time.Duration(interval) * time.Minute) {
		out = append(out, TimeOption{
			Value: t.Format("15:04"),
			Label: formatClock12(t.Hour(), t.Minute()),
		})
	}
	return out
}

// formatClock12 renders a 12-hour label; hours 0 and 12 both display as 12.
func formatClock12(hour, minute int) string {
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, meridiem)
}
