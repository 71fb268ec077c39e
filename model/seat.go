package model

// SeatClass is the closed set of seat categories. Pricing is currently flat
// regardless of class; the field is carried for forward compatibility.
type SeatClass string

const (
	SeatRegular SeatClass = "regular"
	SeatPremium SeatClass = "premium"
	SeatVIP     SeatClass = "vip"
)

type Seat struct {
	Id         string    `json:"id"`
	Row        string    `json:"row"`
	Number     int       `json:"number"`
	Class      SeatClass `json:"type"`
	Price      float64   `json:"price"`
	IsBooked   bool      `json:"isBooked"`
	IsSelected bool      `json:"isSelected"`
}
