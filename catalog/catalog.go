package catalog

import (
	"sort"
	"strings"

	"cinemabook-cli/model"
)

// Provider is read-only access to the booking catalog. Collections are
// loaded once and never mutated at runtime.
type Provider interface {
	Movies() []model.Movie
	Studios() []model.Studio
	ShowTimes() []model.ShowTime
	PaymentMethods() []model.PaymentMethod
}

type staticCatalog struct{}

// Static returns the catalog bundled with the app.
func Static() Provider {
	return staticCatalog{}
}

func (staticCatalog) Movies() []model.Movie {
	return append([]model.Movie{}, movies...)
}

func (staticCatalog) Studios() []model.Studio {
	return append([]model.Studio{}, studios...)
}

func (staticCatalog) ShowTimes() []model.ShowTime {
	out := make([]model.ShowTime, len(showTimes))
	for i, st := range showTimes {
		st.BookedSeats = append([]string{}, st.BookedSeats...)
		out[i] = st
	}
	return out
}

func (staticCatalog) PaymentMethods() []model.PaymentMethod {
	return append([]model.PaymentMethod{}, paymentMethods...)
}

// StudiosFor returns the studios that have at least one showtime for the
// given movie, in catalog order.
func StudiosFor(p Provider, movieId string) []model.Studio {
	withShowing := map[string]bool{}
	for _, st := range p.ShowTimes() {
		if st.MovieId == movieId {
			withShowing[st.StudioId] = true
		}
	}
	var out []model.Studio
	for _, studio := range p.Studios() {
		if withShowing[studio.Id] {
			out = append(out, studio)
		}
	}
	return out
}

// ShowTimesFor returns the showtimes matching both movie and studio, sorted
// by time of day.
func ShowTimesFor(p Provider, movieId string, studioId string) []model.ShowTime {
	var out []model.ShowTime
	for _, st := range p.ShowTimes() {
		if st.MovieId == movieId && st.StudioId == studioId {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return clockMinutes(out[i].Time) < clockMinutes(out[j].Time)
	})
	return out
}

// MovieByID looks a movie up by its identifier.
func MovieByID(p Provider, id string) (model.Movie, bool) {
	for _, movie := range p.Movies() {
		if movie.Id == id {
			return movie, true
		}
	}
	return model.Movie{}, false
}

// StudioByID looks a studio up by its identifier.
func StudioByID(p Provider, id string) (model.Studio, bool) {
	for _, studio := range p.Studios() {
		if studio.Id == id {
			return studio, true
		}
	}
	return model.Studio{}, false
}

// clockMinutes converts a catalog time label like "1:30 PM" to minutes
// after midnight for sorting. Unparseable labels sort last.
func clockMinutes(label string) int {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) != 2 {
		return 1 << 16
	}
	clock, meridiem := fields[0], strings.ToUpper(fields[1])
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 1 << 16
	}
	hour := atoi(parts[0])
	minute := atoi(parts[1])
	if hour < 0 || minute < 0 {
		return 1 << 16
	}
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return hour*60 + minute
}

func atoi(s string) int {
	n := 0
	if s == "" {
		return -1
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
