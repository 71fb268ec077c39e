package booking

import (
	"testing"

	"cinemabook-cli/model"
)

func seats(ids ...string) []model.Seat {
	out := make([]model.Seat, len(ids))
	for i, id := range ids {
		out[i] = model.Seat{Id: id, Price: SeatPrice}
	}
	return out
}

func TestSubtotal(t *testing.T) {
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Subtotal(seats("A1")); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := Subtotal(seats("B1", "B2", "B3")); got != 60 {
		t.Fatalf("expected 60, got %v", got)
	}
}

func TestTotal(t *testing.T) {
	three := seats("B1", "B2", "B3")

	if got := Total(three, nil); got != 60 {
		t.Fatalf("expected 60 without a payment method, got %v", got)
	}

	creditCard := model.PaymentMethod{Id: "credit-card", AdminFee: 2.5}
	if got := Total(three, &creditCard); got != 62.5 {
		t.Fatalf("expected 62.5, got %v", got)
	}

	// The fee is flat, not per seat.
	paypal := model.PaymentMethod{Id: "paypal", AdminFee: 3}
	if got := Total(seats("A1"), &paypal); got != 23 {
		t.Fatalf("expected 23, got %v", got)
	}
	if got := Total(nil, &paypal); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}
