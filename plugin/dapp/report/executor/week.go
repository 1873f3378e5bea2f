package executor

const secondsPerDay = 86400

// Weekday returns the day of week of a unix timestamp, Sunday is 0.
// The epoch itself was a Thursday.
func Weekday(ts int64) int64 {
	return (ts/secondsPerDay + 4) % 7
}

// PeriodStart truncates a unix timestamp to midnight of the Sunday
// opening its weekly reporting period.
func PeriodStart(ts int64) int64 {
	return ts - ts%secondsPerDay - Weekday(ts)*secondsPerDay
}
