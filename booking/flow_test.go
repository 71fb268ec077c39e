package booking

import (
	"errors"
	"testing"

	"cinemabook-cli/model"
)

type fixedTokens struct {
	id string
}

func (f fixedTokens) BookingID() string { return f.id }

func testMovie() model.Movie {
	return model.Movie{Id: "1", Title: "Midnight Heist", Genre: "Thriller"}
}

func testStudio() model.Studio {
	return model.Studio{Id: "1", Name: "Studio 1", Capacity: 120, Type: "Regular"}
}

func testShowTime() model.ShowTime {
	return model.ShowTime{
		Id:          "st-1",
		Time:        "1:30 PM",
		Date:        "2024-01-15",
		MovieId:     "1",
		StudioId:    "1",
		BookedSeats: []string{"A1", "A2"},
	}
}

func advanceToSeats(t *testing.T, f *Flow) {
	t.Helper()
	if err := f.SelectMovie(testMovie()); err != nil {
		t.Fatalf("select movie: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after movie: %v", err)
	}
	if err := f.SelectStudio(testStudio()); err != nil {
		t.Fatalf("select studio: %v", err)
	}
	if err := f.SelectShowTime(testShowTime()); err != nil {
		t.Fatalf("select showtime: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after showtime: %v", err)
	}
}

func TestFlowHappyPath(t *testing.T) {
	f := NewFlow(fixedTokens{id: "BK123456789"})

	if f.Step() != StepSelectMovie {
		t.Fatalf("expected %v, got %v", StepSelectMovie, f.Step())
	}

	advanceToSeats(t, f)
	if f.Step() != StepSelectSeats {
		t.Fatalf("expected %v, got %v", StepSelectSeats, f.Step())
	}

	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}
	if err := f.ToggleSeat("B2"); err != nil {
		t.Fatalf("toggle B2: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after seats: %v", err)
	}

	if err := f.SetEmail("guest@example.com"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if err := f.SelectPayment(model.PaymentMethod{Id: "credit-card", Name: "Credit Card", AdminFee: 2.5}); err != nil {
		t.Fatalf("select payment: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after details: %v", err)
	}

	if f.Step() != StepConfirmation {
		t.Fatalf("expected %v, got %v", StepConfirmation, f.Step())
	}
	if f.BookingID() != "BK123456789" {
		t.Fatalf("expected booking id BK123456789, got %q", f.BookingID())
	}
	if f.Subtotal() != 40 {
		t.Fatalf("expected subtotal 40, got %v", f.Subtotal())
	}
	if f.Total() != 42.5 {
		t.Fatalf("expected total 42.5, got %v", f.Total())
	}
}

func TestFlowForwardGuards(t *testing.T) {
	f := NewFlow(nil)

	// No movie chosen yet.
	if err := f.Next(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if f.Step() != StepSelectMovie {
		t.Fatalf("failed transition moved the flow to %v", f.Step())
	}

	if err := f.SelectMovie(testMovie()); err != nil {
		t.Fatalf("select movie: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after movie: %v", err)
	}

	// Studio without showtime is not enough.
	if err := f.SelectStudio(testStudio()); err != nil {
		t.Fatalf("select studio: %v", err)
	}
	if err := f.Next(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}

	if err := f.SelectShowTime(testShowTime()); err != nil {
		t.Fatalf("select showtime: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after showtime: %v", err)
	}

	// Empty seat selection blocks the details step.
	if err := f.Next(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if err := f.ToggleSeat("C3"); err != nil {
		t.Fatalf("toggle C3: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after seats: %v", err)
	}

	// Email alone is not enough, and neither is a blank email.
	if err := f.SetEmail("   "); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if err := f.Next(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if err := f.SetEmail("guest@example.com"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if err := f.Next(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
}

func TestFlowOperationsGuardedByStep(t *testing.T) {
	f := NewFlow(nil)

	if err := f.SelectStudio(testStudio()); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if err := f.ToggleSeat("A1"); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if err := f.SetEmail("guest@example.com"); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}

	if err := f.SelectMovie(testMovie()); err != nil {
		t.Fatalf("select movie: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after movie: %v", err)
	}
	if err := f.SelectMovie(testMovie()); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
}

func TestFlowShowTimeMustMatchSelection(t *testing.T) {
	f := NewFlow(nil)
	if err := f.SelectMovie(testMovie()); err != nil {
		t.Fatalf("select movie: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after movie: %v", err)
	}

	// Showtime before studio.
	if err := f.SelectShowTime(testShowTime()); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}

	if err := f.SelectStudio(testStudio()); err != nil {
		t.Fatalf("select studio: %v", err)
	}

	other := testShowTime()
	other.StudioId = "2"
	if err := f.SelectShowTime(other); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}

	other = testShowTime()
	other.MovieId = "3"
	if err := f.SelectShowTime(other); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
}

func TestFlowBackPreservesPriorSteps(t *testing.T) {
	f := NewFlow(nil)
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}

	if err := f.Back(); err != nil {
		t.Fatalf("back from seats: %v", err)
	}
	if f.Step() != StepSelectStudioShowtime {
		t.Fatalf("expected %v, got %v", StepSelectStudioShowtime, f.Step())
	}

	draft := f.Draft()
	if draft.Movie == nil || draft.Movie.Id != "1" {
		t.Fatalf("movie lost on back: %+v", draft.Movie)
	}
	if draft.Studio == nil || draft.ShowTime == nil {
		t.Fatal("studio or showtime lost on back")
	}
	if len(draft.Seats) != 1 {
		t.Fatalf("expected kept seat selection, got %v", draft.SeatIDs())
	}

	if err := f.Back(); err != nil {
		t.Fatalf("back from studio: %v", err)
	}
	if err := f.Back(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet at first step, got %v", err)
	}
}

func TestFlowChangingMovieClearsDownstream(t *testing.T) {
	f := NewFlow(nil)
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}

	if err := f.Back(); err != nil {
		t.Fatalf("back to studio step: %v", err)
	}
	if err := f.Back(); err != nil {
		t.Fatalf("back to movie step: %v", err)
	}

	other := testMovie()
	other.Id = "2"
	if err := f.SelectMovie(other); err != nil {
		t.Fatalf("select other movie: %v", err)
	}

	draft := f.Draft()
	if draft.Studio != nil || draft.ShowTime != nil || len(draft.Seats) != 0 {
		t.Fatalf("downstream choices survived a movie change: %+v", draft)
	}
}

func TestFlowChangingStudioClearsSeats(t *testing.T) {
	f := NewFlow(nil)
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}
	if err := f.Back(); err != nil {
		t.Fatalf("back to studio step: %v", err)
	}

	other := testStudio()
	other.Id = "2"
	if err := f.SelectStudio(other); err != nil {
		t.Fatalf("select other studio: %v", err)
	}

	draft := f.Draft()
	if draft.ShowTime != nil || len(draft.Seats) != 0 {
		t.Fatalf("showtime or seats survived a studio change: %+v", draft)
	}
}

func TestFlowReselectingShowTimeClearsSeats(t *testing.T) {
	f := NewFlow(nil)
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}
	if err := f.Back(); err != nil {
		t.Fatalf("back to studio step: %v", err)
	}

	// Same studio, different showing.
	other := testShowTime()
	other.Id = "st-2"
	other.Time = "4:00 PM"
	if err := f.SelectShowTime(other); err != nil {
		t.Fatalf("reselect showtime: %v", err)
	}
	if draft := f.Draft(); len(draft.Seats) != 0 {
		t.Fatalf("seats survived a showtime change: %v", draft.SeatIDs())
	}
}

func TestFlowDraftFrozenAtConfirmation(t *testing.T) {
	f := NewFlow(nil)
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after seats: %v", err)
	}
	if err := f.SetEmail("guest@example.com"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if err := f.SelectPayment(model.PaymentMethod{Id: "paypal", AdminFee: 3}); err != nil {
		t.Fatalf("select payment: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after details: %v", err)
	}

	if err := f.ToggleSeat("B2"); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if err := f.SetEmail("other@example.com"); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if err := f.Next(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if err := f.Back(); !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
}

func TestFlowReset(t *testing.T) {
	f := NewFlow(fixedTokens{id: "BKAAAAAAAAA"})
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}

	f.Reset()

	if f.Step() != StepSelectMovie {
		t.Fatalf("expected %v, got %v", StepSelectMovie, f.Step())
	}
	draft := f.Draft()
	if draft.Movie != nil || draft.Studio != nil || draft.ShowTime != nil || len(draft.Seats) != 0 || draft.Email != "" {
		t.Fatalf("reset left draft state behind: %+v", draft)
	}
	if _, ok := f.Payment(); ok {
		t.Fatal("reset left payment method behind")
	}
	if f.BookingID() != "" {
		t.Fatalf("reset left booking id %q", f.BookingID())
	}

	// Token source survives so a second booking still gets an id.
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after seats: %v", err)
	}
	if err := f.SetEmail("guest@example.com"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if err := f.SelectPayment(model.PaymentMethod{Id: "credit-card"}); err != nil {
		t.Fatalf("select payment: %v", err)
	}
	if err := f.Next(); err != nil {
		t.Fatalf("next after details: %v", err)
	}
	if f.BookingID() != "BKAAAAAAAAA" {
		t.Fatalf("expected BKAAAAAAAAA, got %q", f.BookingID())
	}
}

func TestDraftIsACopy(t *testing.T) {
	f := NewFlow(nil)
	advanceToSeats(t, f)
	if err := f.ToggleSeat("B1"); err != nil {
		t.Fatalf("toggle B1: %v", err)
	}

	draft := f.Draft()
	draft.Movie.Title = "mutated"
	draft.Seats[0].Id = "Z9"

	fresh := f.Draft()
	if fresh.Movie.Title != "Midnight Heist" {
		t.Fatalf("draft copy leaked movie mutation: %q", fresh.Movie.Title)
	}
	if fresh.Seats[0].Id != "B1" {
		t.Fatalf("draft copy leaked seat mutation: %q", fresh.Seats[0].Id)
	}
}
