package model

// PaymentMethod.Type is an open identifier so new catalog entries can be
// added without code changes.
type PaymentMethod struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	AdminFee    float64 `json:"adminFee"`
	Description string  `json:"description"`
}
