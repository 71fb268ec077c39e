package ticket

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"cinemabook-cli/booking"
	"cinemabook-cli/model"
)

func testRecord(t *testing.T) Record {
	t.Helper()
	movie := model.Movie{Id: "1", Title: "Midnight Heist", Genre: "Thriller", Duration: "2h 15m", Rating: "8.4"}
	studio := model.Studio{Id: "1", Name: "Studio 1", Capacity: 120, Type: "Regular"}
	showTime := model.ShowTime{Id: "1", Time: "10:00 AM", Date: "2024-01-15", MovieId: "1", StudioId: "1"}
	draft := booking.Draft{
		Movie:    &movie,
		Studio:   &studio,
		ShowTime: &showTime,
		Seats: []model.Seat{
			{Id: "B1", Row: "B", Number: 1, Price: booking.SeatPrice},
			{Id: "B2", Row: "B", Number: 2, Price: booking.SeatPrice},
			{Id: "B3", Row: "B", Number: 3, Price: booking.SeatPrice},
		},
		Email: "guest@example.com",
	}
	payment := model.PaymentMethod{Id: "credit-card", Name: "Credit Card", AdminFee: 2.5}

	rec, err := NewRecord(draft, payment, "BK123456789")
	if err != nil {
		t.Fatalf("build record: %v", err)
	}
	return rec
}

func TestNewRecordTotals(t *testing.T) {
	rec := testRecord(t)
	if rec.Subtotal != 60 {
		t.Fatalf("expected subtotal 60, got %v", rec.Subtotal)
	}
	if rec.Total != 62.5 {
		t.Fatalf("expected total 62.5, got %v", rec.Total)
	}
	if rec.IssuedAt.IsZero() {
		t.Fatal("issued-at timestamp not set")
	}
}

func TestNewRecordRejectsIncompleteDrafts(t *testing.T) {
	movie := model.Movie{Id: "1"}
	studio := model.Studio{Id: "1"}
	showTime := model.ShowTime{Id: "1"}
	seats := []model.Seat{{Id: "B1"}}
	payment := model.PaymentMethod{Id: "paypal"}

	complete := booking.Draft{Movie: &movie, Studio: &studio, ShowTime: &showTime, Seats: seats, Email: "guest@example.com"}

	tests := []struct {
		name      string
		draft     booking.Draft
		bookingID string
	}{
		{"empty booking id", complete, ""},
		{"no movie", booking.Draft{Studio: &studio, ShowTime: &showTime, Seats: seats, Email: "a@b.c"}, "BK1"},
		{"no studio", booking.Draft{Movie: &movie, ShowTime: &showTime, Seats: seats, Email: "a@b.c"}, "BK1"},
		{"no showtime", booking.Draft{Movie: &movie, Studio: &studio, Seats: seats, Email: "a@b.c"}, "BK1"},
		{"no seats", booking.Draft{Movie: &movie, Studio: &studio, ShowTime: &showTime, Email: "a@b.c"}, "BK1"},
		{"no email", booking.Draft{Movie: &movie, Studio: &studio, ShowTime: &showTime, Seats: seats}, "BK1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRecord(tt.draft, payment, tt.bookingID); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestRenderPDF(t *testing.T) {
	rec := testRecord(t)
	artifact, err := NewRenderer().Render(rec, FormatPDF)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if artifact.Filename != "CinemaBook-Ticket-BK123456789.pdf" {
		t.Fatalf("unexpected filename %q", artifact.Filename)
	}
	if artifact.MIME != "application/pdf" {
		t.Fatalf("unexpected mime %q", artifact.MIME)
	}
	if !bytes.HasPrefix(artifact.Data, []byte("%PDF")) {
		t.Fatal("artifact is not a PDF document")
	}
}

func TestRenderImage(t *testing.T) {
	rec := testRecord(t)
	artifact, err := NewRenderer().Render(rec, FormatImage)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if artifact.Filename != "CinemaBook-Ticket-BK123456789.png" {
		t.Fatalf("unexpected filename %q", artifact.Filename)
	}
	if artifact.MIME != "image/png" {
		t.Fatalf("unexpected mime %q", artifact.MIME)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(artifact.Data, pngMagic) {
		t.Fatal("artifact is not a PNG image")
	}
}

type stubRenderer struct {
	artifact Artifact
	err      error
	started  chan struct{}
	release  chan struct{}
}

func (r *stubRenderer) Render(rec Record, format Format) (Artifact, error) {
	if r.started != nil {
		close(r.started)
	}
	if r.release != nil {
		<-r.release
	}
	return r.artifact, r.err
}

func TestExportWrapsRenderFailures(t *testing.T) {
	renderErr := errors.New("boom")
	exporter := NewExporter(&stubRenderer{err: renderErr})

	_, err := exporter.Export(Record{}, FormatPDF)
	if !IsExportFailure(err) {
		t.Fatalf("expected an export failure, got %v", err)
	}
	if !errors.Is(err, renderErr) {
		t.Fatalf("expected wrapped render error, got %v", err)
	}
	if !strings.Contains(err.Error(), "PDF") {
		t.Fatalf("error should name the format: %v", err)
	}

	// The flag is released after a failure.
	if exporter.InFlight() {
		t.Fatal("exporter still in flight after failure")
	}
}

func TestExportSuppressesConcurrentRequests(t *testing.T) {
	renderer := &stubRenderer{
		artifact: Artifact{Filename: "t.pdf", Data: []byte("%PDF")},
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	exporter := NewExporter(renderer)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = exporter.Export(Record{}, FormatPDF)
	}()

	<-renderer.started
	if !exporter.InFlight() {
		t.Fatal("expected exporter to report in flight")
	}
	if _, err := exporter.Export(Record{}, FormatImage); !errors.Is(err, ErrExportInFlight) {
		t.Fatalf("expected ErrExportInFlight, got %v", err)
	}

	close(renderer.release)
	wg.Wait()
	if firstErr != nil {
		t.Fatalf("first export failed: %v", firstErr)
	}

	// Finishing re-enables the trigger.
	renderer.started = nil
	renderer.release = nil
	if _, err := exporter.Export(Record{}, FormatPDF); err != nil {
		t.Fatalf("second export failed: %v", err)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{20, "$20"},
		{2.5, "$2.5"},
		{62.5, "$62.5"},
		{1.25, "$1.25"},
	}
	for _, tt := range tests {
		if got := Money(tt.amount); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tickets")
	artifact := Artifact{Filename: "CinemaBook-Ticket-BK1.pdf", Data: []byte("%PDF-1.4")}

	path, err := Save(artifact, dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != filepath.Join(dir, artifact.Filename) {
		t.Fatalf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(data, artifact.Data) {
		t.Fatal("written data does not match the artifact")
	}
}
