package booking

import (
	"fmt"
	"strings"

	"cinemabook-cli/model"
)

// Step identifies a state of the booking wizard, in strict forward order.
type Step int

const (
	StepSelectMovie Step = iota
	StepSelectStudioShowtime
	StepSelectSeats
	StepEnterDetails
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepSelectMovie:
		return "select movie"
	case StepSelectStudioShowtime:
		return "select studio and showtime"
	case StepSelectSeats:
		return "select seats"
	case StepEnterDetails:
		return "enter booking details"
	case StepConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Draft is the booking record accumulated across the flow. Optional fields
// are nil until the corresponding step sets them.
type Draft struct {
	Movie    *model.Movie
	Studio   *model.Studio
	ShowTime *model.ShowTime
	Seats    []model.Seat
	Email    string
}

// Subtotal derives the seat subtotal; it is never stored on the draft.
func (d Draft) Subtotal() float64 {
	return Subtotal(d.Seats)
}

// SeatIDs returns the selected seat ids in selection order.
func (d Draft) SeatIDs() []string {
	ids := make([]string, len(d.Seats))
	for i, seat := range d.Seats {
		ids[i] = seat.Id
	}
	return ids
}

func (d Draft) clone() Draft {
	out := d
	if d.Movie != nil {
		movie := *d.Movie
		out.Movie = &movie
	}
	if d.Studio != nil {
		studio := *d.Studio
		out.Studio = &studio
	}
	if d.ShowTime != nil {
		showTime := *d.ShowTime
		showTime.BookedSeats = append([]string{}, d.ShowTime.BookedSeats...)
		out.ShowTime = &showTime
	}
	out.Seats = append([]model.Seat{}, d.Seats...)
	return out
}

// Flow is the booking wizard state machine. It owns the draft exclusively;
// all mutation goes through named operations, and transitions are guarded
// so an incomplete draft can never reach confirmation.
type Flow struct {
	step      Step
	draft     Draft
	payment   *model.PaymentMethod
	bookingID string
	tokens    TokenSource
}

// NewFlow starts a flow at the movie-selection step. A nil token source
// falls back to RandomTokens.
func NewFlow(tokens TokenSource) *Flow {
	if tokens == nil {
		tokens = RandomTokens{}
	}
	return &Flow{tokens: tokens}
}

func (f *Flow) Step() Step {
	return f.step
}

// Draft returns a copy of the current draft; mutating it does not affect
// the flow.
func (f *Flow) Draft() Draft {
	return f.draft.clone()
}

// Payment returns the chosen payment method, if any.
func (f *Flow) Payment() (model.PaymentMethod, bool) {
	if f.payment == nil {
		return model.PaymentMethod{}, false
	}
	return *f.payment, true
}

// BookingID is empty until the flow reaches confirmation.
func (f *Flow) BookingID() string {
	return f.bookingID
}

func (f *Flow) Subtotal() float64 {
	return Subtotal(f.draft.Seats)
}

func (f *Flow) Total() float64 {
	return Total(f.draft.Seats, f.payment)
}

// SelectMovie records the movie and invalidates every downstream choice:
// studio, showtime, and seats are scoped to a specific movie.
func (f *Flow) SelectMovie(movie model.Movie) error {
	if f.step != StepSelectMovie {
		return stepErr("select movie", f.step)
	}
	f.draft.Movie = &movie
	f.draft.Studio = nil
	f.draft.ShowTime = nil
	f.draft.Seats = nil
	return nil
}

// SelectStudio records the studio. A new studio invalidates the prior
// showtime choice and any selected seats.
func (f *Flow) SelectStudio(studio model.Studio) error {
	if f.step != StepSelectStudioShowtime {
		return stepErr("select studio", f.step)
	}
	f.draft.Studio = &studio
	f.draft.ShowTime = nil
	f.draft.Seats = nil
	return nil
}

// SelectShowTime records the showtime, which must belong to the chosen
// movie and studio. Any selected seats are cleared: selections are scoped
// to a specific showing.
func (f *Flow) SelectShowTime(showTime model.ShowTime) error {
	if f.step != StepSelectStudioShowtime {
		return stepErr("select showtime", f.step)
	}
	if f.draft.Movie == nil || f.draft.Studio == nil {
		return fmt.Errorf("choose a movie and studio first: %w", ErrPreconditionNotMet)
	}
	if showTime.MovieId != f.draft.Movie.Id || showTime.StudioId != f.draft.Studio.Id {
		return fmt.Errorf("showtime %s does not belong to the chosen movie and studio: %w", showTime.Id, ErrPreconditionNotMet)
	}
	f.draft.ShowTime = &showTime
	f.draft.Seats = nil
	return nil
}

// ToggleSeat adds or removes a seat from the selection.
func (f *Flow) ToggleSeat(seatId string) error {
	if f.step != StepSelectSeats {
		return stepErr("toggle seat", f.step)
	}
	next, err := Toggle(seatId, *f.draft.ShowTime, f.draft.Seats)
	if err != nil {
		return err
	}
	f.draft.Seats = next
	return nil
}

// SetEmail records the customer email.
func (f *Flow) SetEmail(email string) error {
	if f.step != StepEnterDetails {
		return stepErr("set email", f.step)
	}
	f.draft.Email = email
	return nil
}

// SelectPayment records the payment method.
func (f *Flow) SelectPayment(method model.PaymentMethod) error {
	if f.step != StepEnterDetails {
		return stepErr("select payment method", f.step)
	}
	f.payment = &method
	return nil
}

// Next advances to the following step. It fails with ErrPreconditionNotMet
// when the current step's exit guard does not hold, leaving the flow
// unchanged. Entering confirmation generates the booking identifier and
// freezes the draft.
func (f *Flow) Next() error {
	switch f.step {
	case StepSelectMovie:
		if f.draft.Movie == nil {
			return fmt.Errorf("no movie chosen: %w", ErrPreconditionNotMet)
		}
		f.draft.Studio = nil
		f.draft.ShowTime = nil
		f.draft.Seats = nil
		f.step = StepSelectStudioShowtime
	case StepSelectStudioShowtime:
		if f.draft.Studio == nil || f.draft.ShowTime == nil {
			return fmt.Errorf("no studio and showtime chosen: %w", ErrPreconditionNotMet)
		}
		f.step = StepSelectSeats
	case StepSelectSeats:
		if len(f.draft.Seats) == 0 {
			return fmt.Errorf("no seats selected: %w", ErrPreconditionNotMet)
		}
		f.step = StepEnterDetails
	case StepEnterDetails:
		if strings.TrimSpace(f.draft.Email) == "" || f.payment == nil {
			return fmt.Errorf("email and payment method are required: %w", ErrPreconditionNotMet)
		}
		f.bookingID = f.tokens.BookingID()
		f.step = StepConfirmation
	default:
		return fmt.Errorf("no forward transition from %s: %w", f.step, ErrPreconditionNotMet)
	}
	return nil
}

// Back returns to the immediate predecessor without clearing prior-step
// fields. It is permitted from every step except the first and the
// terminal confirmation.
func (f *Flow) Back() error {
	switch f.step {
	case StepSelectStudioShowtime, StepSelectSeats, StepEnterDetails:
		f.step--
		return nil
	default:
		return fmt.Errorf("no backward transition from %s: %w", f.step, ErrPreconditionNotMet)
	}
}

// Reset replaces the draft with an empty one, discards the payment method
// and booking identifier, and returns to the movie-selection step.
func (f *Flow) Reset() {
	*f = Flow{tokens: f.tokens}
}

func stepErr(op string, step Step) error {
	return fmt.Errorf("%s is not allowed during %s: %w", op, step, ErrPreconditionNotMet)
}
