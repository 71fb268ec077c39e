package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinemabook-cli/booking"
	"cinemabook-cli/ticket"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	stepDone     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	stepCurrent  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	stepPending  = lipgloss.NewStyle().Faint(true)
	contextStyle = lipgloss.NewStyle().Faint(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	seatOpenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatBookedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatPickedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	seatCursorStyle = lipgloss.NewStyle().Reverse(true)
	screenStyle     = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

var stepLabels = [...]string{"Movie", "Showtime", "Seats", "Details", "Confirm"}

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	switch m.state {
	case stateSelectMovie:
		b.WriteString(m.movieList.View())
		b.WriteString("\n" + hintStyle.Render("enter select • type to filter • q quit"))
	case stateSelectStudio:
		b.WriteString(m.studioList.View())
		b.WriteString("\n" + hintStyle.Render("enter select • esc back • q quit"))
	case stateSelectShowtime:
		b.WriteString(m.showtimeList.View())
		b.WriteString("\n" + hintStyle.Render("enter select • esc back • q quit"))
	case stateSelectSeats:
		b.WriteString(m.seatsView())
	case stateEnterEmail:
		b.WriteString(m.emailView())
	case stateSelectPayment:
		b.WriteString(m.paymentList.View())
		b.WriteString(m.noticeLine())
		b.WriteString("\n" + hintStyle.Render("enter confirm booking • esc back • q quit"))
	case stateConfirmation:
		b.WriteString(m.confirmationView())
	case stateError:
		b.WriteString(m.errorView())
	}

	b.WriteString("\n")
	return b.String()
}

func (m appModel) headerView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🎬 CinemaBook"))
	b.WriteString("  ")

	current := m.stepIndex()
	for i, label := range stepLabels {
		if i > 0 {
			b.WriteString(hintStyle.Render(" › "))
		}
		switch {
		case i < current:
			b.WriteString(stepDone.Render(label))
		case i == current:
			b.WriteString(stepCurrent.Render(label))
		default:
			b.WriteString(stepPending.Render(label))
		}
	}
	b.WriteString("\n")

	if ctx := m.contextLine(); ctx != "" {
		b.WriteString(contextStyle.Render(ctx))
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) stepIndex() int {
	switch m.state {
	case stateSelectMovie:
		return 0
	case stateSelectStudio, stateSelectShowtime:
		return 1
	case stateSelectSeats:
		return 2
	case stateEnterEmail, stateSelectPayment:
		return 3
	case stateConfirmation:
		return 4
	default:
		return 0
	}
}

func (m appModel) contextLine() string {
	draft := m.flow.Draft()
	var parts []string
	if draft.Movie != nil {
		parts = append(parts, draft.Movie.Title)
	}
	if draft.Studio != nil {
		parts = append(parts, draft.Studio.Name)
	}
	if draft.ShowTime != nil {
		parts = append(parts, draft.ShowTime.Date+" "+draft.ShowTime.Time)
	}
	return strings.Join(parts, " • ")
}

func (m appModel) seatsView() string {
	draft := m.flow.Draft()
	if draft.ShowTime == nil {
		return ""
	}
	availability := booking.Availability(*draft.ShowTime)
	selected := make(map[string]bool, len(draft.Seats))
	for _, seat := range draft.Seats {
		selected[seat.Id] = true
	}

	var b strings.Builder
	rowWidth := booking.SeatsPerRow*4 + 4
	b.WriteString(screenStyle.Render(centerText("▁▁▁ SCREEN ▁▁▁", rowWidth)))
	b.WriteString("\n\n")

	for row := 0; row < booking.GridRows; row++ {
		label := booking.RowLabel(row)
		b.WriteString(label + "  ")
		for col := 0; col < booking.SeatsPerRow; col++ {
			number := col + 1
			id := booking.SeatID(row, number)
			cell := fmt.Sprintf("%2d", number)
			if availability[id] {
				cell = "XX"
			}

			var rendered string
			switch {
			case row == m.seatRow && col == m.seatCol:
				rendered = seatCursorStyle.Render(cell)
			case availability[id]:
				rendered = seatBookedStyle.Render(cell)
			case selected[id]:
				rendered = seatPickedStyle.Render(cell)
			default:
				rendered = seatOpenStyle.Render(cell)
			}
			b.WriteString(" " + rendered + " ")
		}
		b.WriteString(" " + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(seatOpenStyle.Render("nn") + hintStyle.Render(" available  "))
	b.WriteString(seatPickedStyle.Render("nn") + hintStyle.Render(" selected  "))
	b.WriteString(seatBookedStyle.Render("XX") + hintStyle.Render(" booked"))
	b.WriteString("\n\n")

	if len(draft.Seats) == 0 {
		b.WriteString(hintStyle.Render("No seats selected yet."))
	} else {
		b.WriteString(fmt.Sprintf("Selected %s • %d/%d seats • subtotal %s",
			strings.Join(draft.SeatIDs(), ", "), len(draft.Seats), booking.MaxSeats, ticket.Money(draft.Subtotal())))
	}
	b.WriteString(m.noticeLine())
	b.WriteString("\n" + hintStyle.Render("arrows move • space toggle • enter continue • esc back • q quit"))
	return b.String()
}

func (m appModel) emailView() string {
	var b strings.Builder
	b.WriteString("Where should we send your booking confirmation?\n\n")
	b.WriteString(m.emailInput.View())
	b.WriteString(m.noticeLine())
	b.WriteString("\n\n" + hintStyle.Render("enter continue • esc back"))
	return b.String()
}

func (m appModel) confirmationView() string {
	rec := m.record
	var b strings.Builder

	b.WriteString(successStyle.Render("Booking confirmed!"))
	b.WriteString("\n\n")

	var panel strings.Builder
	panel.WriteString(titleStyle.Render("Booking ID  "+rec.BookingID) + "\n\n")
	panel.WriteString(fmt.Sprintf("%-10s %s (%s)\n", "Movie", rec.Movie.Title, rec.Movie.Genre))
	panel.WriteString(fmt.Sprintf("%-10s %s (%s)\n", "Studio", rec.Studio.Name, rec.Studio.Type))
	panel.WriteString(fmt.Sprintf("%-10s %s at %s\n", "Showtime", rec.ShowTime.Date, rec.ShowTime.Time))
	panel.WriteString(fmt.Sprintf("%-10s %s\n", "Seats", strings.Join(seatLabels(rec), ", ")))
	panel.WriteString(fmt.Sprintf("%-10s %s\n", "Email", rec.Email))
	panel.WriteString(fmt.Sprintf("%-10s %s\n", "Payment", rec.Payment.Name))
	panel.WriteString("\n")
	panel.WriteString(fmt.Sprintf("%-10s %s\n", "Subtotal", ticket.Money(rec.Subtotal)))
	panel.WriteString(fmt.Sprintf("%-10s %s\n", "Admin fee", ticket.Money(rec.Payment.AdminFee)))
	panel.WriteString(fmt.Sprintf("%-10s %s", "Total", ticket.Money(rec.Total)))
	b.WriteString(panelStyle.Render(panel.String()))
	b.WriteString("\n\n")

	if m.exporting {
		b.WriteString(m.spinner.View() + " Exporting ticket...")
	} else if m.exportedPath != "" {
		b.WriteString(successStyle.Render("Saved " + m.exportedPath))
	}
	b.WriteString(m.noticeLine())
	b.WriteString("\n" + hintStyle.Render("p download PDF • i download image • n new booking • q quit"))
	return b.String()
}

func (m appModel) errorView() string {
	var b strings.Builder
	b.WriteString(failStyle.Render("Something went wrong"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(m.err.Error())
	}
	b.WriteString("\n\n" + hintStyle.Render("esc go back • q quit"))
	return b.String()
}

func (m appModel) noticeLine() string {
	if m.notice == "" {
		return ""
	}
	return "\n" + noticeStyle.Render(m.notice)
}

func seatLabels(rec ticket.Record) []string {
	ids := make([]string, 0, len(rec.Seats))
	for _, seat := range rec.Seats {
		ids = append(ids, seat.Id)
	}
	return ids
}

func centerText(text string, width int) string {
	pad := (width - len([]rune(text))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}

