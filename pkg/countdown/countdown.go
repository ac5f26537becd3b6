package countdown

import "time"

// TimeLeft is the remaining time split into display units
type TimeLeft struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Remaining returns the time from now until launch, truncated to whole
// seconds. After launch every unit is zero.
func Remaining(launch, now time.Time) TimeLeft {
	d := launch.Sub(now)
	if d <= 0 {
		return TimeLeft{}
	}

	total := int64(d / time.Second)
	return TimeLeft{
		Days:    int(total / 86400),
		Hours:   int(total / 3600 % 24),
		Minutes: int(total / 60 % 60),
		Seconds: int(total % 60),
	}
}

// Launched reports whether launch has passed
func Launched(launch, now time.Time) bool {
	return !now.Before(launch)
}
