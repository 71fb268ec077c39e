package booking

import (
	"fmt"

	"cinemabook-cli/model"
)

// The seat grid is fixed and studio-independent: 8 rows labeled A-H with 10
// seats each. Studio capacity is informational only and is not reconciled
// against the grid.
const (
	GridRows    = 8
	SeatsPerRow = 10
	MaxSeats    = 5
	SeatPrice   = 20.0
)

// RowLabel returns the letter for a zero-based row index.
func RowLabel(row int) string {
	if row < 0 || row >= GridRows {
		return ""
	}
	return string(rune('A' + row))
}

// SeatID builds the composite seat identifier, e.g. "A1".
func SeatID(row int, number int) string {
	return fmt.Sprintf("%s%d", RowLabel(row), number)
}

// Availability maps every seat id in the grid to whether it is booked for
// the given showtime. A seat is booked iff its id appears in the showtime's
// booked-seat list.
func Availability(showTime model.ShowTime) map[string]bool {
	booked := make(map[string]bool, len(showTime.BookedSeats))
	for _, id := range showTime.BookedSeats {
		booked[id] = true
	}
	out := make(map[string]bool, GridRows*SeatsPerRow)
	for row := 0; row < GridRows; row++ {
		for number := 1; number <= SeatsPerRow; number++ {
			id := SeatID(row, number)
			out[id] = booked[id]
		}
	}
	return out
}

// Toggle adds or removes the seat with the given id from the selection and
// returns the new selection. The input slice is never mutated. Removing is
// always permitted; adding fails when the seat is booked, when the id is
// outside the grid, or when the selection is already at MaxSeats. On
// failure the returned selection equals the input.
func Toggle(seatId string, showTime model.ShowTime, selection []model.Seat) ([]model.Seat, error) {
	for i, seat := range selection {
		if seat.Id == seatId {
			next := make([]model.Seat, 0, len(selection)-1)
			next = append(next, selection[:i]...)
			next = append(next, selection[i+1:]...)
			return next, nil
		}
	}

	row, number, ok := parseSeatID(seatId)
	if !ok {
		return selection, fmt.Errorf("seat %q is not in the grid: %w", seatId, ErrSeatUnavailable)
	}
	for _, booked := range showTime.BookedSeats {
		if booked == seatId {
			return selection, fmt.Errorf("seat %s is already booked: %w", seatId, ErrSeatUnavailable)
		}
	}
	if len(selection) >= MaxSeats {
		return selection, fmt.Errorf("at most %d seats per booking: %w", MaxSeats, ErrSelectionLimitReached)
	}

	next := make([]model.Seat, 0, len(selection)+1)
	next = append(next, selection...)
	next = append(next, model.Seat{
		Id:         seatId,
		Row:        RowLabel(row),
		Number:     number,
		Class:      model.SeatRegular,
		Price:      SeatPrice,
		IsSelected: true,
	})
	return next, nil
}

func parseSeatID(id string) (row int, number int, ok bool) {
	if len(id) < 2 {
		return 0, 0, false
	}
	r := id[0]
	if r < 'A' || r >= 'A'+GridRows {
		return 0, 0, false
	}
	number = 0
	for i := 1; i < len(id); i++ {
		c := id[i]
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		number = number*10 + int(c-'0')
	}
	if number < 1 || number > SeatsPerRow {
		return 0, 0, false
	}
	row = int(r - 'A')
	// Only the canonical spelling names a seat; aliases like "A01" would
	// dodge the raw string comparisons against BookedSeats and the selection.
	if id != SeatID(row, number) {
		return 0, 0, false
	}
	return row, number, true
}
