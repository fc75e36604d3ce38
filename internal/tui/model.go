// Package tui implements the terminal reader: a paged line view with word
// lookups and a search view, built on Bubble Tea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/domain/search"
	"github.com/helixml/antigone/domain/text"
	"github.com/helixml/antigone/internal/session"
	"github.com/rs/zerolog"
)

type view int

const (
	viewRead view = iota
	viewJump
	viewSearch
)

// token is one word of a displayed line.
type token struct {
	line  int
	index int
	word  string
}

func (t token) selection() lexicon.Selection {
	return lexicon.Selection{Word: t.word, LineNum: t.line, Index: t.index}
}

type linesLoadedMsg struct {
	ticket session.Ticket
	lines  []text.Line
	err    error
}

type lookupLoadedMsg struct {
	ticket  session.Ticket
	entries []lexicon.Entry
	err     error
}

type searchLoadedMsg struct {
	ticket  session.Ticket
	entries []lexicon.Entry
	err     error
}

type speakersLoadedMsg struct {
	speakers []string
	err      error
}

// Model is the Bubble Tea model of the reader.
type Model struct {
	ctx     context.Context
	sources session.Sources
	theme   Theme
	log     zerolog.Logger
	keys    keyMap

	passage *session.Passage
	lookup  *session.Lookup
	search  *session.Search

	view       view
	jumpInput  textinput.Model
	queryInput textinput.Model
	inputFocus bool
	mode       search.Mode
	speakers   []string
	speakerIdx int
	resultIdx  int

	tokens []token
	cursor int

	spinner  spinner.Model
	spinning bool

	startParam string
	endParam   string
	width      int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithInitialSpan sets the raw start and end the reader opens at.
func WithInitialSpan(start, end string) Option {
	return func(m *Model) {
		m.startParam = start
		m.endParam = end
	}
}

// New creates the reader model. sources.Speakers may be nil.
func New(sources session.Sources, nav passage.Navigator, theme Theme, opts ...Option) Model {
	jump := textinput.New()
	jump.Prompt = "line: "
	jump.Placeholder = "12 or 12-15"
	jump.CharLimit = 11
	jump.Cursor.SetMode(cursor.CursorStatic)

	query := textinput.New()
	query.Prompt = "search: "
	query.Placeholder = "word or definition"
	query.CharLimit = 64
	query.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctx:        context.Background(),
		sources:    sources,
		theme:      theme,
		log:        zerolog.Nop(),
		keys:       defaultKeyMap(),
		passage:    session.NewPassage(nav),
		lookup:     session.NewLookup(),
		search:     session.NewSearch(search.DefaultPageSize),
		jumpInput:  jump,
		queryInput: query,
		mode:       search.ModeWord,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		spinning:   true,
		width:      80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init opens the initial passage and loads the speaker list.
func (m Model) Init() tea.Cmd {
	t := m.passage.Open(m.startParam, m.endParam)
	return tea.Batch(m.fetchLines(t), m.fetchSpeakers(), m.spinner.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case linesLoadedMsg:
		if !m.passage.Resolve(msg.ticket, msg.lines, msg.err) {
			m.log.Debug().Uint64("seq", msg.ticket.Seq).Str("address", msg.ticket.Address.String()).Msg("discarded stale lines")
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("address", msg.ticket.Address.String()).Msg("load lines failed")
			return m, nil
		}
		m.lookup.Clear()
		m.tokens = tokenize(m.passage.Lines())
		m.cursor = 0
		return m, nil

	case lookupLoadedMsg:
		if m.lookup.Resolve(msg.ticket, msg.entries, msg.err) && msg.err != nil {
			m.log.Warn().Err(msg.err).Str("word", m.lookup.Selection().Word).Msg("lookup failed")
		}
		return m, nil

	case searchLoadedMsg:
		if m.search.Resolve(msg.ticket, msg.entries, msg.err) {
			m.resultIdx = 0
			if msg.err != nil {
				m.log.Warn().Err(msg.err).Str("query", m.search.Pending().Text()).Msg("search failed")
			}
		}
		return m, nil

	case speakersLoadedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("load speakers failed")
			return m, nil
		}
		m.speakers = msg.speakers
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewJump:
			return m.updateJump(msg)
		case viewSearch:
			return m.updateSearch(msg)
		default:
			return m.updateRead(msg)
		}
	}
	return m, nil
}

func (m Model) loading() bool {
	return m.passage.State() == session.StateLoading ||
		m.lookup.State() == session.StateLoading ||
		m.search.State() == session.StateLoading
}

// spin starts the spinner unless it is already running.
func (m *Model) spin() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m Model) fetchLines(t session.Ticket) tea.Cmd {
	ctx, src := m.ctx, m.sources.Lines
	return func() tea.Msg {
		lines, err := src.Lines(ctx, t.Address.Start(), t.Address.End())
		return linesLoadedMsg{ticket: t, lines: lines, err: err}
	}
}

func (m Model) fetchLookup(t session.Ticket, word string) tea.Cmd {
	ctx, src := m.ctx, m.sources.Words
	return func() tea.Msg {
		entries, err := src.Lookup(ctx, word)
		return lookupLoadedMsg{ticket: t, entries: entries, err: err}
	}
}

func (m Model) fetchSearch(t session.Ticket, q search.Query) tea.Cmd {
	ctx, src := m.ctx, m.sources.Search
	return func() tea.Msg {
		entries, err := src.Search(ctx, string(q.Mode()), q.Text())
		return searchLoadedMsg{ticket: t, entries: entries, err: err}
	}
}

func (m Model) fetchSpeakers() tea.Cmd {
	if m.sources.Speakers == nil {
		return nil
	}
	ctx, src := m.ctx, m.sources.Speakers
	return func() tea.Msg {
		speakers, err := src.Speakers(ctx)
		return speakersLoadedMsg{speakers: speakers, err: err}
	}
}

// currentSpeaker returns the speaker filter, "" for everyone.
func (m Model) currentSpeaker() string {
	if m.speakerIdx < 1 || m.speakerIdx > len(m.speakers) {
		return ""
	}
	return m.speakers[m.speakerIdx-1]
}

func tokenize(lines []text.Line) []token {
	var tokens []token
	for _, l := range lines {
		for i, w := range l.Words() {
			tokens = append(tokens, token{line: l.Number(), index: i, word: w})
		}
	}
	return tokens
}
