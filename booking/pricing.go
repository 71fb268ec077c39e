package booking

import "cinemabook-cli/model"

// Subtotal is the selected-seat count times the flat per-seat rate. It is
// recomputed on every read and never cached, so it cannot drift from the
// seat list.
func Subtotal(seats []model.Seat) float64 {
	return float64(len(seats)) * SeatPrice
}

// Total adds the chosen payment method's flat admin fee to the subtotal.
// A nil method contributes no fee.
func Total(seats []model.Seat, method *model.PaymentMethod) float64 {
	total := Subtotal(seats)
	if method != nil {
		total += method.AdminFee
	}
	return total
}
