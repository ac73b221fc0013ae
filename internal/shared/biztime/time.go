// Package biztime centralizes time handling. All storage and transport use
// UTC; epoch milliseconds are the canonical persisted representation.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NowUnixMilli returns the current UTC time as epoch milliseconds.
func NowUnixMilli() int64 {
	return NowUTC().UnixMilli()
}

// FromUnixMilli converts epoch milliseconds to a UTC time.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
