package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"cinemabook-cli/model"
)

type movieItem struct {
	movie model.Movie
}

func (i movieItem) Title() string { return i.movie.Title }

func (i movieItem) Description() string {
	return fmt.Sprintf("%s • %s • ★ %s", i.movie.Genre, i.movie.Duration, i.movie.Rating)
}

func (i movieItem) FilterValue() string {
	return i.movie.Title + " " + i.movie.Genre
}

type studioItem struct {
	studio model.Studio
}

func (i studioItem) Title() string { return i.studio.Name }

func (i studioItem) Description() string {
	return fmt.Sprintf("%s • %d seats", i.studio.Type, i.studio.Capacity)
}

func (i studioItem) FilterValue() string {
	return i.studio.Name + " " + i.studio.Type
}

type showtimeItem struct {
	showTime model.ShowTime
}

func (i showtimeItem) Title() string { return i.showTime.Time }

func (i showtimeItem) Description() string {
	taken := len(i.showTime.BookedSeats)
	if taken == 0 {
		return i.showTime.Date + " • all seats open"
	}
	return fmt.Sprintf("%s • %d seats taken", i.showTime.Date, taken)
}

func (i showtimeItem) FilterValue() string {
	return i.showTime.Time + " " + i.showTime.Date
}

type paymentItem struct {
	method model.PaymentMethod
}

func (i paymentItem) Title() string { return i.method.Name }

func (i paymentItem) Description() string {
	desc := strings.TrimSpace(i.method.Description)
	fee := fmt.Sprintf("$%.2f admin fee", i.method.AdminFee)
	if desc == "" {
		return fee
	}
	return desc + " • " + fee
}

func (i paymentItem) FilterValue() string { return i.method.Name }

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

func buildStudioItems(studios []model.Studio) []list.Item {
	items := make([]list.Item, 0, len(studios))
	for _, studio := range studios {
		items = append(items, studioItem{studio: studio})
	}
	return items
}

func buildShowtimeItems(showTimes []model.ShowTime) []list.Item {
	items := make([]list.Item, 0, len(showTimes))
	for _, st := range showTimes {
		items = append(items, showtimeItem{showTime: st})
	}
	return items
}

func buildPaymentItems(methods []model.PaymentMethod) []list.Item {
	items := make([]list.Item, 0, len(methods))
	for _, method := range methods {
		items = append(items, paymentItem{method: method})
	}
	return items
}
