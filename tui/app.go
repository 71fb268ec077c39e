package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinemabook-cli/booking"
	"cinemabook-cli/catalog"
	"cinemabook-cli/store"
	"cinemabook-cli/ticket"
)

type wizardState int

const (
	stateSelectMovie wizardState = iota
	stateSelectStudio
	stateSelectShowtime
	stateSelectSeats
	stateEnterEmail
	stateSelectPayment
	stateConfirmation
	stateError
)

// Config wires the wizard's collaborators. Zero fields fall back to the
// built-in catalog, random booking ids, and the CinemaBook renderer.
type Config struct {
	Catalog      catalog.Provider
	Tokens       booking.TokenSource
	Renderer     ticket.Renderer
	OutputDir    string
	DefaultEmail string
}

type appModel struct {
	catalog   catalog.Provider
	flow      *booking.Flow
	exporter  *ticket.Exporter
	outputDir string

	state     wizardState
	lastState wizardState
	err       error

	width  int
	height int

	movieList    list.Model
	studioList   list.Model
	showtimeList list.Model
	paymentList  list.Model

	emailInput   textinput.Model
	defaultEmail string

	seatRow int
	seatCol int
	notice  string

	spinner      spinner.Model
	exporting    bool
	exportedPath string

	record    ticket.Record
	recordSet bool
}

type errMsg struct {
	err         error
	returnState wizardState
}

type exportDoneMsg struct {
	path string
	err  error
}

func New(cfg Config) tea.Model {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Static()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = ticket.NewRenderer()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	m := appModel{
		catalog:      cfg.Catalog,
		flow:         booking.NewFlow(cfg.Tokens),
		exporter:     ticket.NewExporter(cfg.Renderer),
		outputDir:    cfg.OutputDir,
		defaultEmail: cfg.DefaultEmail,
		state:        stateSelectMovie,
	}

	m.movieList = newList("Select Movie")
	m.studioList = newList("Select Studio")
	m.showtimeList = newList("Select Showtime")
	m.paymentList = newList("Select Payment Method")
	m.movieList.SetItems(buildMovieItems(cfg.Catalog.Movies()))
	m.paymentList.SetItems(buildPaymentItems(cfg.Catalog.PaymentMethods()))

	input := textinput.New()
	input.Placeholder = "you@example.com"
	input.CharLimit = 120
	input.Width = 40
	m.emailInput = input

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == stateEnterEmail {
			return m.handleEmailKey(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case spinner.TickMsg:
		if m.exporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			if errors.Is(msg.err, ticket.ErrExportInFlight) {
				return m, nil
			}
			m.notice = fmt.Sprintf("Export failed: %v. Press p or i to retry.", msg.err)
			return m, nil
		}
		m.notice = ""
		m.exportedPath = msg.path
		return m, nil

	case errMsg:
		m.err = msg.err
		m.lastState = msg.returnState
		m.state = stateError
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectStudio:
		m.studioList, cmd = m.studioList.Update(msg)
	case stateSelectShowtime:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case stateSelectPayment:
		m.paymentList, cmd = m.paymentList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil && listPtr.IsFiltered() {
			listPtr.ResetFilter()
			return m, nil, true
		}
		return m.goBack()
	case "up", "k":
		if m.state == stateSelectSeats {
			if m.seatRow > 0 {
				m.seatRow--
			}
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSelectSeats {
			if m.seatRow < booking.GridRows-1 {
				m.seatRow++
			}
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSelectSeats {
			if m.seatCol > 0 {
				m.seatCol--
			}
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSelectSeats {
			if m.seatCol < booking.SeatsPerRow-1 {
				m.seatCol++
			}
			return m, nil, true
		}
	case " ", "x":
		if m.state == stateSelectSeats {
			return m.toggleSeatUnderCursor()
		}
	case "p":
		if m.state == stateConfirmation {
			return m.startExport(ticket.FormatPDF)
		}
	case "i":
		if m.state == stateConfirmation {
			return m.startExport(ticket.FormatImage)
		}
	case "n":
		if m.state == stateConfirmation {
			return m.startNewBooking()
		}
	}

	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}
	return m, nil, false
}

func (m appModel) handleEnter() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateSelectMovie:
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok {
			return m, nil, true
		}
		if err := m.flow.SelectMovie(item.movie); err != nil {
			return m, errCmd(err, m.state), true
		}
		if err := m.flow.Next(); err != nil {
			return m, errCmd(err, m.state), true
		}
		m.studioList.SetItems(buildStudioItems(catalog.StudiosFor(m.catalog, item.movie.Id)))
		m.studioList.Select(0)
		m.state = stateSelectStudio
		return m, nil, true

	case stateSelectStudio:
		item, ok := m.studioList.SelectedItem().(studioItem)
		if !ok {
			return m, nil, true
		}
		if err := m.flow.SelectStudio(item.studio); err != nil {
			return m, errCmd(err, m.state), true
		}
		draft := m.flow.Draft()
		m.showtimeList.SetItems(buildShowtimeItems(catalog.ShowTimesFor(m.catalog, draft.Movie.Id, item.studio.Id)))
		m.showtimeList.Select(0)
		m.state = stateSelectShowtime
		return m, nil, true

	case stateSelectShowtime:
		item, ok := m.showtimeList.SelectedItem().(showtimeItem)
		if !ok {
			return m, nil, true
		}
		if err := m.flow.SelectShowTime(item.showTime); err != nil {
			return m, errCmd(err, m.state), true
		}
		if err := m.flow.Next(); err != nil {
			return m, errCmd(err, m.state), true
		}
		m.seatRow = 0
		m.seatCol = 0
		m.notice = ""
		m.state = stateSelectSeats
		return m, nil, true

	case stateSelectSeats:
		if err := m.flow.Next(); err != nil {
			m.notice = "Select at least one seat to continue."
			return m, nil, true
		}
		m.notice = ""
		m.prefillEmail()
		m.emailInput.Focus()
		m.state = stateEnterEmail
		return m, textinput.Blink, true

	case stateSelectPayment:
		item, ok := m.paymentList.SelectedItem().(paymentItem)
		if !ok {
			return m, nil, true
		}
		if err := m.flow.SelectPayment(item.method); err != nil {
			return m, errCmd(err, m.state), true
		}
		_ = store.RememberPaymentMethod(item.method.Id)
		if err := m.flow.Next(); err != nil {
			m.notice = "Enter an email and choose a payment method first."
			return m, nil, true
		}
		payment, _ := m.flow.Payment()
		rec, err := ticket.NewRecord(m.flow.Draft(), payment, m.flow.BookingID())
		if err != nil {
			return m, errCmd(err, m.state), true
		}
		m.record = rec
		m.recordSet = true
		m.notice = ""
		m.exportedPath = ""
		m.state = stateConfirmation
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleEmailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.emailInput.Value())
		if value == "" {
			m.notice = "An email address is required."
			return m, nil
		}
		if err := m.flow.SetEmail(value); err != nil {
			return m, errCmd(err, m.state)
		}
		_ = store.RememberEmail(value)
		m.notice = ""
		m.selectStoredPayment()
		m.state = stateSelectPayment
		return m, nil
	case tea.KeyEsc:
		if err := m.flow.Back(); err != nil {
			return m, errCmd(err, m.state)
		}
		m.notice = ""
		m.emailInput.Blur()
		m.state = stateSelectSeats
		return m, nil
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	return m, cmd
}

func (m appModel) goBack() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateSelectStudio:
		if err := m.flow.Back(); err != nil {
			return m, errCmd(err, m.state), true
		}
		m.state = stateSelectMovie
	case stateSelectShowtime:
		// Studio and showtime share one flow step.
		m.state = stateSelectStudio
	case stateSelectSeats:
		if err := m.flow.Back(); err != nil {
			return m, errCmd(err, m.state), true
		}
		m.notice = ""
		m.state = stateSelectShowtime
	case stateSelectPayment:
		m.notice = ""
		m.emailInput.Focus()
		m.state = stateEnterEmail
		return m, textinput.Blink, true
	case stateError:
		m.err = nil
		m.state = m.lastState
	}
	return m, nil, true
}

func (m appModel) toggleSeatUnderCursor() (appModel, tea.Cmd, bool) {
	seatId := booking.SeatID(m.seatRow, m.seatCol+1)
	err := m.flow.ToggleSeat(seatId)
	switch {
	case err == nil:
		m.notice = ""
	case errors.Is(err, booking.ErrSeatUnavailable):
		m.notice = fmt.Sprintf("Seat %s is already booked.", seatId)
	case errors.Is(err, booking.ErrSelectionLimitReached):
		m.notice = fmt.Sprintf("You can select at most %d seats per booking.", booking.MaxSeats)
	default:
		return m, errCmd(err, m.state), true
	}
	return m, nil, true
}

func (m appModel) startExport(format ticket.Format) (appModel, tea.Cmd, bool) {
	if m.exporting || m.exporter.InFlight() || !m.recordSet {
		return m, nil, true
	}
	m.exporting = true
	m.notice = ""
	m.exportedPath = ""
	return m, tea.Batch(m.exportCmd(format), m.spinner.Tick), true
}

func (m appModel) exportCmd(format ticket.Format) tea.Cmd {
	exporter := m.exporter
	rec := m.record
	dir := m.outputDir
	return func() tea.Msg {
		artifact, err := exporter.Export(rec, format)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path, err := ticket.Save(artifact, dir)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m appModel) startNewBooking() (appModel, tea.Cmd, bool) {
	m.flow.Reset()
	m.record = ticket.Record{}
	m.recordSet = false
	m.notice = ""
	m.exportedPath = ""
	m.emailInput.SetValue("")
	m.movieList.Select(0)
	m.state = stateSelectMovie
	return m, nil, true
}

func (m *appModel) prefillEmail() {
	if m.emailInput.Value() != "" {
		return
	}
	if draft := m.flow.Draft(); draft.Email != "" {
		m.emailInput.SetValue(draft.Email)
		return
	}
	if m.defaultEmail != "" {
		m.emailInput.SetValue(m.defaultEmail)
		return
	}
	if recent, ok := store.RecentEmail(); ok {
		m.emailInput.SetValue(recent)
	}
}

func (m *appModel) selectStoredPayment() {
	prefs, err := store.LoadPreferences()
	if err != nil || prefs.PaymentMethodID == "" {
		return
	}
	for i, item := range m.paymentList.Items() {
		pi, ok := item.(paymentItem)
		if ok && pi.method.Id == prefs.PaymentMethodID {
			m.paymentList.Select(i)
			return
		}
	}
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	listPtr.SetFilterText(listPtr.FilterValue() + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := trimLastRune(listPtr.FilterValue())
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectStudio:
		return &m.studioList
	case stateSelectShowtime:
		return &m.showtimeList
	case stateSelectPayment:
		return &m.paymentList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.studioList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.paymentList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func errCmd(err error, returnState wizardState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState}
	}
}
