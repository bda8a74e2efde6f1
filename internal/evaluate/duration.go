package evaluate

import "time"

// Remaining is a duration split into calendar-style parts. Days takes the sign, the
// other parts are always in range, so -90s is -1 days 23 hours 58 minutes 30 seconds.
type Remaining struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Split breaks d into whole days, hours, minutes and seconds. Sub-second parts are dropped
// by flooring.
func Split(d time.Duration) Remaining {
	secs := int64(d / time.Second)
	if d%time.Second < 0 {
		secs--
	}

	days := secs / 86400
	rem := secs % 86400
	if rem < 0 {
		rem += 86400
		days--
	}

	return Remaining{
		Days:    days,
		Hours:   rem / 3600,
		Minutes: rem % 3600 / 60,
		Seconds: rem % 60,
	}
}
