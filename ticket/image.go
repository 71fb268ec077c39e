package ticket

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	imageWidth  = 600
	imageHeight = 640
	imageMargin = 30
)

func renderImage(rec Record) (Artifact, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	// Card border
	dc.SetRGB255(37, 99, 235)
	dc.SetLineWidth(3)
	dc.DrawRoundedRectangle(10, 10, imageWidth-20, imageHeight-20, 12)
	dc.Stroke()

	y := 48.0
	center := float64(imageWidth) / 2

	dc.SetRGB255(30, 41, 59)
	dc.DrawStringAnchored("CinemaBook", center, y, 0.5, 0.5)
	y += 22
	dc.SetRGB255(5, 150, 105)
	dc.DrawStringAnchored("MOVIE TICKET", center, y, 0.5, 0.5)
	y += 18
	dc.SetRGB255(100, 116, 139)
	dc.DrawStringAnchored("Booking ID: "+rec.BookingID, center, y, 0.5, 0.5)
	y += 16
	y = dashedLine(dc, y)

	dc.SetRGB255(30, 41, 59)
	dc.DrawString(rec.Movie.Title, imageMargin, y)
	y += 18
	dc.SetRGB255(100, 116, 139)
	for _, line := range []string{
		"Genre: " + rec.Movie.Genre,
		"Duration: " + rec.Movie.Duration,
		"Rating: " + rec.Movie.Rating,
	} {
		dc.DrawString(line, imageMargin, y)
		y += 15
	}
	y += 8

	y = imageSection(dc, y, "Show Details", []string{
		"Date: " + rec.ShowTime.Date,
		"Time: " + rec.ShowTime.Time,
		"Studio: " + rec.Studio.Name,
	})
	y = imageSection(dc, y, "Customer Info", []string{
		"Email: " + rec.Email,
		"Payment: " + rec.Payment.Name,
	})

	dc.SetRGB255(30, 41, 59)
	dc.DrawString("Selected Seats", imageMargin, y)
	y += 18
	y = drawSeatChips(dc, rec, y)
	y += 10

	y = imageSection(dc, y, "Price Breakdown", []string{
		fmt.Sprintf("Tickets (%d): %s", len(rec.Seats), Money(rec.Subtotal)),
		fmt.Sprintf("Admin Fee (%s): %s", rec.Payment.Name, Money(rec.Payment.AdminFee)),
	})
	dc.SetRGB255(37, 99, 235)
	dc.DrawString("Total Paid: "+Money(rec.Total), imageMargin, y)
	y += 24
	y = dashedLine(dc, y)

	dc.SetRGB255(100, 116, 139)
	dc.DrawStringAnchored("Please arrive 15 minutes early - Bring valid ID", center, y, 0.5, 0.5)
	y += 15
	dc.DrawStringAnchored("Generated on "+rec.IssuedAt.Format("2006-01-02 15:04:05"), center, y, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename: fmt.Sprintf("CinemaBook-Ticket-%s.png", rec.BookingID),
		MIME:     "image/png",
		Data:     buf.Bytes(),
	}, nil
}

func imageSection(dc *gg.Context, y float64, title string, lines []string) float64 {
	dc.SetRGB255(30, 41, 59)
	dc.DrawString(title, imageMargin, y)
	y += 17
	dc.SetRGB255(100, 116, 139)
	for _, line := range lines {
		dc.DrawString(line, imageMargin, y)
		y += 15
	}
	return y + 8
}

func drawSeatChips(dc *gg.Context, rec Record, y float64) float64 {
	x := float64(imageMargin)
	for _, seat := range rec.Seats {
		label := seat.Id
		w, h := dc.MeasureString(label)
		chipW := w + 16
		chipH := h + 10

		if x+chipW > imageWidth-imageMargin {
			x = imageMargin
			y += chipH + 6
		}
		dc.SetRGB255(219, 234, 254)
		dc.DrawRoundedRectangle(x, y-chipH+6, chipW, chipH, chipH/2)
		dc.Fill()
		dc.SetRGB255(30, 64, 175)
		dc.DrawStringAnchored(label, x+chipW/2, y-chipH/2+6, 0.5, 0.5)
		x += chipW + 6
	}
	return y + 14
}

func dashedLine(dc *gg.Context, y float64) float64 {
	dc.SetRGB255(203, 213, 225)
	dc.SetLineWidth(1)
	x := float64(imageMargin)
	for x < imageWidth-imageMargin {
		dc.DrawLine(x, y, minFloat(x+8, imageWidth-imageMargin), y)
		dc.Stroke()
		x += 14
	}
	return y + 22
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
