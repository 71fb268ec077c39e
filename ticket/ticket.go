package ticket

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"cinemabook-cli/booking"
	"cinemabook-cli/model"
)

// Format selects the artifact kind produced by a Renderer.
type Format int

const (
	FormatPDF Format = iota
	FormatImage
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "PDF"
	case FormatImage:
		return "image"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

func (f Format) ext() string {
	if f == FormatImage {
		return "png"
	}
	return "pdf"
}

// Record is the frozen snapshot of a finished booking handed to the
// renderer. All fields are resolved; nothing here is optional.
type Record struct {
	BookingID string
	Movie     model.Movie
	Studio    model.Studio
	ShowTime  model.ShowTime
	Seats     []model.Seat
	Email     string
	Payment   model.PaymentMethod
	Subtotal  float64
	Total     float64
	IssuedAt  time.Time
}

// NewRecord builds a Record from a finalized draft. It fails if the draft
// is missing any field confirmation requires; the flow's guards make that
// unreachable when the draft comes from a completed flow.
func NewRecord(draft booking.Draft, payment model.PaymentMethod, bookingID string) (Record, error) {
	switch {
	case strings.TrimSpace(bookingID) == "":
		return Record{}, errors.New("booking id is required")
	case draft.Movie == nil, draft.Studio == nil, draft.ShowTime == nil:
		return Record{}, errors.New("draft is missing movie, studio, or showtime")
	case len(draft.Seats) == 0:
		return Record{}, errors.New("draft has no selected seats")
	case strings.TrimSpace(draft.Email) == "":
		return Record{}, errors.New("draft has no customer email")
	}
	return Record{
		BookingID: bookingID,
		Movie:     *draft.Movie,
		Studio:    *draft.Studio,
		ShowTime:  *draft.ShowTime,
		Seats:     append([]model.Seat{}, draft.Seats...),
		Email:     draft.Email,
		Payment:   payment,
		Subtotal:  draft.Subtotal(),
		Total:     booking.Total(draft.Seats, &payment),
		IssuedAt:  time.Now(),
	}, nil
}

// Artifact is a rendered ticket ready to be written to disk.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
}

// Renderer turns a booking record into a downloadable artifact. The caller
// does not inspect the artifact's internal layout.
type Renderer interface {
	Render(rec Record, format Format) (Artifact, error)
}

// ExportError wraps a renderer failure. The booking record is unaffected
// and the export may be retried.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export ticket as %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsExportFailure reports whether the error came from a failed render.
func IsExportFailure(err error) bool {
	var exportErr *ExportError
	return errors.As(err, &exportErr)
}

// ErrExportInFlight is returned when an export is requested while another
// one is still running. The request is suppressed, not queued.
var ErrExportInFlight = errors.New("an export is already in flight")

// Exporter serializes exports with a single in-flight flag. The flag is
// released on completion or failure alike.
type Exporter struct {
	renderer Renderer
	inFlight atomic.Bool
}

func NewExporter(renderer Renderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// InFlight reports whether an export is currently running, so callers can
// disable the trigger.
func (e *Exporter) InFlight() bool {
	return e.inFlight.Load()
}

// Export renders the record in the given format. Concurrent calls while an
// export is running fail with ErrExportInFlight; render failures are
// wrapped in ExportError.
func (e *Exporter) Export(rec Record, format Format) (Artifact, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return Artifact{}, ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	artifact, err := e.renderer.Render(rec, format)
	if err != nil {
		return Artifact{}, &ExportError{Format: format, Err: err}
	}
	return artifact, nil
}

// Save writes the artifact under dir, creating it if needed, and returns
// the full path.
func Save(artifact Artifact, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
