package booking

import "errors"

var (
	// ErrPreconditionNotMet is returned when a transition or mutation is
	// attempted before the current step's guard is satisfied.
	ErrPreconditionNotMet = errors.New("precondition not met")

	// ErrSeatUnavailable is returned when a toggle targets a seat that is
	// already booked or outside the grid.
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrSelectionLimitReached is returned when a toggle would add a seat
	// beyond the per-booking maximum.
	ErrSelectionLimitReached = errors.New("selection limit reached")
)
