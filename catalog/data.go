package catalog

import "cinemabook-cli/model"

var movies = []model.Movie{
	{
		Id:          "1",
		Title:       "Dune: Part Two",
		Poster:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
		Duration:    "166 min",
		Genre:       "Sci-Fi, Action",
		Rating:      "8.8",
		Description: "Paul Atreides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
	},
	{
		Id:          "2",
		Title:       "Oppenheimer",
		Poster:      "https://images.pexels.com/photos/3681591/pexels-photo-3681591.jpeg?auto=compress&cs=tinysrgb&w=400",
		Duration:    "180 min",
		Genre:       "Biography, Drama",
		Rating:      "8.4",
		Description: "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
	},
	{
		Id:          "3",
		Title:       "Barbie",
		Poster:      "https://images.pexels.com/photos/1037995/pexels-photo-1037995.jpeg?auto=compress&cs=tinysrgb&w=400",
		Duration:    "114 min",
		Genre:       "Comedy, Adventure",
		Rating:      "7.0",
		Description: "Barbie and Ken are having the time of their lives in the colorful and seemingly perfect world of Barbie Land.",
	},
	{
		Id:          "4",
		Title:       "John Wick: Chapter 4",
		Poster:      "https://images.pexels.com/photos/1906794/pexels-photo-1906794.jpeg?auto=compress&cs=tinysrgb&w=400",
		Duration:    "169 min",
		Genre:       "Action, Crime",
		Rating:      "7.7",
		Description: "John Wick uncovers a path to defeating The High Table.",
	},
}

// Capacity is display-only; the seat grid is a fixed 8x10 regardless of the
// studio. The mismatch comes from the upstream catalog.
var studios = []model.Studio{
	{Id: "1", Name: "IMAX Premium", Capacity: 120, Type: "IMAX"},
	{Id: "2", Name: "Dolby Atmos", Capacity: 100, Type: "Dolby"},
	{Id: "3", Name: "Standard Digital", Capacity: 80, Type: "Standard"},
	{Id: "4", Name: "VIP Lounge", Capacity: 40, Type: "VIP"},
}

var showTimes = []model.ShowTime{
	// Dune: Part Two
	{Id: "1", Time: "10:00 AM", Date: "2024-01-15", MovieId: "1", StudioId: "1", BookedSeats: []string{"A1", "A2", "B5", "C3"}},
	{Id: "2", Time: "1:30 PM", Date: "2024-01-15", MovieId: "1", StudioId: "1", BookedSeats: []string{"D1", "D2", "E5"}},
	{Id: "3", Time: "5:00 PM", Date: "2024-01-15", MovieId: "1", StudioId: "2", BookedSeats: []string{"A3", "B1", "B2"}},
	{Id: "4", Time: "8:30 PM", Date: "2024-01-15", MovieId: "1", StudioId: "2", BookedSeats: []string{"C4", "C5", "D3"}},

	// Oppenheimer
	{Id: "5", Time: "11:00 AM", Date: "2024-01-15", MovieId: "2", StudioId: "3", BookedSeats: []string{"A1", "A2", "B3"}},
	{Id: "6", Time: "2:30 PM", Date: "2024-01-15", MovieId: "2", StudioId: "3", BookedSeats: []string{"C1", "C2", "D4"}},
	{Id: "7", Time: "6:00 PM", Date: "2024-01-15", MovieId: "2", StudioId: "4", BookedSeats: []string{"A1", "B1", "B2"}},
	{Id: "8", Time: "9:30 PM", Date: "2024-01-15", MovieId: "2", StudioId: "4", BookedSeats: []string{"C3", "D1", "D2"}},

	// Barbie
	{Id: "9", Time: "10:30 AM", Date: "2024-01-15", MovieId: "3", StudioId: "1", BookedSeats: []string{"A4", "A5", "B3"}},
	{Id: "10", Time: "1:00 PM", Date: "2024-01-15", MovieId: "3", StudioId: "2", BookedSeats: []string{"C1", "C2", "D5"}},
	{Id: "11", Time: "4:30 PM", Date: "2024-01-15", MovieId: "3", StudioId: "3", BookedSeats: []string{"A2", "B4", "C3"}},
	{Id: "12", Time: "7:00 PM", Date: "2024-01-15", MovieId: "3", StudioId: "4", BookedSeats: []string{"A1", "B1", "C1"}},

	// John Wick: Chapter 4
	{Id: "13", Time: "11:30 AM", Date: "2024-01-15", MovieId: "4", StudioId: "1", BookedSeats: []string{"A3", "B2", "C4"}},
	{Id: "14", Time: "3:00 PM", Date: "2024-01-15", MovieId: "4", StudioId: "2", BookedSeats: []string{"B1", "B2", "C5"}},
	{Id: "15", Time: "6:30 PM", Date: "2024-01-15", MovieId: "4", StudioId: "3", BookedSeats: []string{"A1", "A2", "B3"}},
	{Id: "16", Time: "10:00 PM", Date: "2024-01-15", MovieId: "4", StudioId: "4", BookedSeats: []string{"C2", "C3", "D4"}},
}

var paymentMethods = []model.PaymentMethod{
	{
		Id:          "1",
		Name:        "Credit Card",
		Type:        "card",
		AdminFee:    2.5,
		Description: "Visa, MasterCard, American Express",
	},
	{
		Id:          "2",
		Name:        "PayPal",
		Type:        "paypal",
		AdminFee:    3.0,
		Description: "Pay securely with your PayPal account",
	},
	{
		Id:          "3",
		Name:        "Apple Pay",
		Type:        "apple",
		AdminFee:    1.5,
		Description: "Touch ID or Face ID required",
	},
	{
		Id:          "4",
		Name:        "Google Pay",
		Type:        "google",
		AdminFee:    1.5,
		Description: "Pay with your Google account",
	},
	{
		Id:          "5",
		Name:        "Bank Transfer",
		Type:        "bank",
		AdminFee:    1.0,
		Description: "Direct bank transfer",
	},
}
