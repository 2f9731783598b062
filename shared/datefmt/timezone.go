package datefmt

import "time"

const secondsPerMinute = 60

// OffsetMinutes returns the offset east of UTC, in minutes, of the zone t carries at t.
func OffsetMinutes(t time.Time) int {
	_, offset := t.Zone()

	return offset / secondsPerMinute
}

// resolveTimezone shifts t so that its wall clock, read in t's own location,
// shows the clock of the requested zone. Unknown modes leave t untouched.
func resolveTimezone(t time.Time, tz Timezone) time.Time {
	deviceOffset := OffsetMinutes(t)

	var target int

	switch tz.Mode {
	case TimezoneUTC:
		target = 0
	case TimezoneLocal:
		if tz.GMTOffset == nil {
			return t
		}

		target = *tz.GMTOffset
	default:
		return t
	}

	return t.Add(time.Duration(target-deviceOffset) * time.Minute)
}
