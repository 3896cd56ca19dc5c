package postlist

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalboard/app"
	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/tui/common"
)

// --- Messages ---

// PageLoadedMsg carries a fetched list or search page.
type PageLoadedMsg struct {
	Page   domain.PostPage
	ReqSeq int
}

// PageErrorMsg is sent when a list or search fetch fails.
type PageErrorMsg struct {
	Err    error
	ReqSeq int
}

// OpenPostMsg asks the root app to show a post.
type OpenPostMsg struct {
	ID int64
}

// NewPostMsg asks the root app to open the compose form.
type NewPostMsg struct{}

// OpenRankingsMsg asks the root app to show the ranking panels.
type OpenRankingsMsg struct{}

// SearchTypeChangedMsg reports a new search type so it can be persisted.
type SearchTypeChangedMsg struct {
	Type domain.SearchType
}

// --- Model ---

type inputMode int

const (
	browseMode inputMode = iota
	searchMode
	jumpMode
)

// Model is the post list view.
type Model struct {
	posts   app.PostService
	state   ListState
	cursor  int
	mode    inputMode
	search  textinput.Model
	jump    textinput.Model
	jumpErr string
	notice  string
	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates the list view. st is the remembered search type.
func New(posts app.PostService, st domain.SearchType) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DC4E4"))

	search := textinput.New()
	search.Placeholder = "search posts"
	search.Prompt = "/ "
	search.CharLimit = 100

	jump := textinput.New()
	jump.Placeholder = "page"
	jump.Prompt = "go to: "
	jump.CharLimit = 6
	jump.Width = 8

	return Model{
		posts:   posts,
		state:   NewListState(st).Start(),
		search:  search,
		jump:    jump,
		keys:    common.DefaultKeyMap(),
		spinner: s,
		width:   100,
		height:  30,
	}
}

// Init loads the first page. New already moved the state to loading.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m *Model) start() tea.Cmd {
	m.state = m.state.Start()
	return m.fetch()
}

// State exposes the list state, mostly for tests and the root app.
func (m Model) State() ListState { return m.state }

// Capturing reports whether a text input has focus, so global keys such as
// quit must not fire.
func (m Model) Capturing() bool { return m.mode != browseMode }

// Reload refetches the current page.
func (m Model) Reload() (Model, tea.Cmd) {
	cmd := m.start()
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// PostCreated returns to page 1 of the plain list.
func (m Model) PostCreated() (Model, tea.Cmd) {
	m.state = m.state.PostCreated()
	m.cursor = 0
	m.search.SetValue("")
	return m, tea.Batch(m.fetch(), m.spinner.Tick)
}

// PostDeleted reloads the page the deleted post was on.
func (m Model) PostDeleted() (Model, tea.Cmd) {
	m.state = m.state.PostDeleted()
	return m, tea.Batch(m.fetch(), m.spinner.Tick)
}

func (m Model) selected() (domain.PostLine, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Posts) {
		return domain.PostLine{}, false
	}
	return m.state.Posts[m.cursor], true
}
