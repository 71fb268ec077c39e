package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// CinemaTicket renders booking records as A4 PDF documents or PNG images
// laid out like the CinemaBook ticket.
type CinemaTicket struct{}

func NewRenderer() CinemaTicket {
	return CinemaTicket{}
}

func (CinemaTicket) Render(rec Record, format Format) (Artifact, error) {
	switch format {
	case FormatPDF:
		return renderPDF(rec)
	case FormatImage:
		return renderImage(rec)
	default:
		return Artifact{}, fmt.Errorf("unsupported ticket format %d", int(format))
	}
}

func renderPDF(rec Record) (Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("CinemaBook Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 12, "CinemaBook", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(5, 150, 105)
	pdf.CellFormat(0, 8, "MOVIE TICKET", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 7, "Booking ID: "+rec.BookingID, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	drawDivider(pdf)

	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, rec.Movie.Title, "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 116, 139)
	for _, line := range []string{
		"Genre: " + rec.Movie.Genre,
		"Duration: " + rec.Movie.Duration,
		"Rating: " + rec.Movie.Rating,
	} {
		pdf.CellFormat(0, 6, line, "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	pdfSection(pdf, "Show Details", []string{
		"Date: " + rec.ShowTime.Date,
		"Time: " + rec.ShowTime.Time,
		"Studio: " + rec.Studio.Name,
	})
	pdfSection(pdf, "Customer Info", []string{
		"Email: " + rec.Email,
		"Payment: " + rec.Payment.Name,
	})
	pdfSection(pdf, "Selected Seats", []string{
		strings.Join(seatIDs(rec), ", "),
	})

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 8, "Price Breakdown", "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, fmt.Sprintf("Tickets (%d): %s", len(rec.Seats), Money(rec.Subtotal)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Admin Fee (%s): %s", rec.Payment.Name, Money(rec.Payment.AdminFee)), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 9, "Total Paid: "+Money(rec.Total), "", 1, "", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(146, 64, 14)
	pdf.CellFormat(0, 7, "Important Information", "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, note := range []string{
		"- Please arrive at least 15 minutes before show time",
		"- Bring a valid ID for verification",
		"- This ticket is non-refundable and non-transferable",
		"- Present this ticket (digital or printed) at the cinema entrance",
	} {
		pdf.CellFormat(0, 5, note, "", 1, "", false, 0, "")
	}
	pdf.Ln(4)
	drawDivider(pdf)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 5, "Generated on "+rec.IssuedAt.Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename: fmt.Sprintf("CinemaBook-Ticket-%s.pdf", rec.BookingID),
		MIME:     "application/pdf",
		Data:     buf.Bytes(),
	}, nil
}

func pdfSection(pdf *gofpdf.Fpdf, title string, lines []string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 8, title, "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 116, 139)
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "", false, 0, "")
	}
	pdf.Ln(3)
}

func drawDivider(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(203, 213, 225)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.Line(left, y, width-right, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.Ln(4)
}

func seatIDs(rec Record) []string {
	ids := make([]string, len(rec.Seats))
	for i, seat := range rec.Seats {
		ids[i] = seat.Id
	}
	return ids
}

// Money formats an amount the way every ticket surface renders prices:
// dollar sign, trailing zeros trimmed.
func Money(amount float64) string {
	label := fmt.Sprintf("%.2f", amount)
	label = strings.TrimRight(label, "0")
	label = strings.TrimRight(label, ".")
	return "$" + label
}
