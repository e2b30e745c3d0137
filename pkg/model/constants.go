package model

// Guest-count bounds. Room bed counts reuse the same range as capacity limits.
const (
	MinGuestCount = 1
	MaxGuestCount = 10
)

// CancellationDaysLimit is the minimum number of days before a booking's
// start date required for the booking to still be cancellable.
const CancellationDaysLimit = 3
