package postdetail

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalboard/app"
	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/tui/common"
)

const commentLimit = 1000

// --- Messages ---

// DetailLoadedMsg carries a fetched post.
type DetailLoadedMsg struct {
	PostID int64
	Detail domain.PostDetail
}

// DetailErrorMsg is sent when fetching a post fails.
type DetailErrorMsg struct {
	PostID int64
	Err    error
}

// BackMsg asks the root app to return to the list. Dirty is set when
// comments or votes changed so the list counters are stale.
type BackMsg struct {
	Dirty bool
}

// EditPostMsg asks the root app to open the post in the compose form.
type EditPostMsg struct {
	Post domain.PostDetail
}

// PostDeletedMsg reports that the shown post was deleted.
type PostDeletedMsg struct {
	ID int64
}

// --- Model ---

type phase int

const (
	loadingPhase phase = iota
	readyPhase
	erroredPhase
)

type mode int

const (
	browseMode mode = iota
	formMode
	confirmCommentDelete
	confirmPostDelete
)

// formTarget says what the comment form submits.
type formTarget struct {
	parentID  *int64 // reply target, nil for a root comment
	editingID int64  // non-zero when editing
}

// Model is the post detail view: the post card and its comment thread.
//
// The flat comment list is the only comment state that is mutated. The tree
// and the rendered lines are rebuilt from it after every change.
type Model struct {
	posts    app.PostService
	comments app.CommentService
	editor   app.Editor
	keys     common.KeyMap
	spinner  spinner.Model
	viewport viewport.Model

	postID int64
	phase  phase
	err    error
	detail domain.PostDetail
	flat   []domain.Comment
	roots  []*domain.CommentNode
	lines  []domain.ThreadLine
	cursor int

	mode    mode
	form    textarea.Model
	target  formTarget
	formErr error
	busy    bool
	notice  string
	dirty   bool

	width  int
	height int
}

// New creates the detail view for postID; Init fetches it.
func New(posts app.PostService, comments app.CommentService, ed app.Editor, postID int64) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DC4E4"))

	ta := textarea.New()
	ta.Placeholder = "Write a comment..."
	ta.CharLimit = commentLimit
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(4)

	return Model{
		posts:    posts,
		comments: comments,
		editor:   ed,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
		viewport: viewport.New(100, 20),
		postID:   postID,
		phase:    loadingPhase,
		flat:     []domain.Comment{},
		form:     ta,
		width:    100,
		height:   30,
	}
}

// Init fetches the post.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// PostID is the id of the shown post.
func (m Model) PostID() int64 { return m.postID }

// Capturing reports whether the comment form has focus.
func (m Model) Capturing() bool { return m.mode == formMode }

// Reload refetches the post, keeping the current view until it arrives.
func (m Model) Reload() (Model, tea.Cmd) {
	m.busy = true
	return m, m.fetch()
}

// setComments replaces the flat list and rebuilds the tree, keeping the
// cursor on the same comment when it still exists.
func (m *Model) setComments(list []domain.Comment, focusID int64) {
	if focusID == 0 {
		if line, ok := m.selected(); ok {
			focusID = line.Comment.ID
		}
	}
	m.flat = list
	m.roots = domain.BuildCommentTree(list)
	m.lines = domain.Flatten(m.roots, domain.DefaultRenderTiers)
	m.cursor = 0
	for i, ln := range m.lines {
		if ln.Comment.ID == focusID {
			m.cursor = i
			break
		}
	}
}

func (m Model) selected() (domain.ThreadLine, bool) {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return domain.ThreadLine{}, false
	}
	return m.lines[m.cursor], true
}
