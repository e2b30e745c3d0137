package model

import "time"

// ToUTCDate maps t to midnight UTC of t's calendar date in its own location.
// A stay date picked as 2024-07-01 in any timezone within ±14h of UTC stays
// 2024-07-01 after normalization, which keeps date-only comparisons on the
// backend from drifting by a day.
func ToUTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
