package model

type Movie struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Duration    string `json:"duration"`
	Genre       string `json:"genre"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
}
