package model

type Studio struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

type ShowTime struct {
	Id          string   `json:"id"`
	Time        string   `json:"time"`
	Date        string   `json:"date"`
	MovieId     string   `json:"movieId"`
	StudioId    string   `json:"studioId"`
	BookedSeats []string `json:"bookedSeats"`
}
