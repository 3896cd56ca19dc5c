package compose

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/app"
	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/tui/common"
)

const (
	titleLimit = 100
	bodyLimit  = 5000
)

// --- Messages ---

// DoneMsg is sent when the form closes, after a successful submit or a cancel.
type DoneMsg struct {
	PostID    int64 // 0 when cancelled or when the backend returned no id
	IsEdit    bool
	Cancelled bool
}

type submitResultMsg struct {
	id  int64
	err error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

type field int

const (
	titleField field = iota
	bodyField
)

// Model is the new/edit post form.
type Model struct {
	posts      app.PostService
	editor     app.Editor
	keys       common.KeyMap
	title      textinput.Model
	body       textarea.Model
	focus      field
	postID     int64 // 0 for a new post
	original   domain.PostInput
	submitting bool
	err        error
	width      int
}

// NewPost creates an empty form for a new post.
func NewPost(posts app.PostService, ed app.Editor) Model {
	return newModel(posts, ed, 0, domain.PostInput{})
}

// EditPost creates a form prefilled with an existing post.
func EditPost(posts app.PostService, ed app.Editor, post domain.PostDetail) Model {
	return newModel(posts, ed, post.ID, domain.PostInput{Title: post.Title, Contents: post.Contents})
}

func newModel(posts app.PostService, ed app.Editor, id int64, in domain.PostInput) Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = titleLimit
	ti.SetValue(in.Title)
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Write your post..."
	ta.CharLimit = bodyLimit
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(10)
	ta.SetValue(in.Contents)

	return Model{
		posts:    posts,
		editor:   ed,
		keys:     common.DefaultKeyMap(),
		title:    ti,
		body:     ta,
		postID:   id,
		original: in,
		width:    80,
	}
}

// IsEdit reports whether the form edits an existing post.
func (m Model) IsEdit() bool { return m.postID != 0 }

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) input() domain.PostInput {
	return domain.PostInput{Title: m.title.Value(), Contents: m.body.Value()}
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.body.SetWidth(max(min(msg.Width-4, 100), 20))
		m.title.Width = max(min(msg.Width-12, 90), 10)
		return m, nil

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		id := msg.id
		if m.IsEdit() {
			id = m.postID
		}
		return m, done(DoneMsg{PostID: id, IsEdit: m.IsEdit()})

	case editorFinishedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("editor: %w", msg.err)
			return m, nil
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			m.err = err
			return m, nil
		}
		if content != "" {
			m.body.SetValue(content)
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, done(DoneMsg{IsEdit: m.IsEdit(), Cancelled: true})
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.OpenEditor):
			return m, m.launchEditor()
		case key.Matches(msg, m.keys.NextField):
			return m.toggleFocus()
		}
	}

	var cmd tea.Cmd
	if m.focus == titleField {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleFocus() (Model, tea.Cmd) {
	if m.focus == titleField {
		m.focus = bodyField
		m.title.Blur()
		return m, m.body.Focus()
	}
	m.focus = titleField
	m.body.Blur()
	return m, m.title.Focus()
}

// submit validates locally and only then sends the request.
func (m Model) submit() (Model, tea.Cmd) {
	in := m.input().Normalize()
	if err := in.Validate(); err != nil {
		m.err = err
		return m, nil
	}
	if m.IsEdit() && in == m.original.Normalize() {
		return m, done(DoneMsg{PostID: m.postID, IsEdit: true, Cancelled: true})
	}
	m.err = nil
	m.submitting = true

	posts := m.posts
	id := m.postID
	return m, func() tea.Msg {
		if id != 0 {
			_, err := posts.Update(context.Background(), id, in)
			return submitResultMsg{id: id, err: err}
		}
		newID, err := posts.Create(context.Background(), in)
		return submitResultMsg{id: newID, err: err}
	}
}

// launchEditor opens the body in $EDITOR. tea.ExecProcess suspends Bubble
// Tea while the editor owns the terminal.
func (m Model) launchEditor() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	label := "new post body"
	if m.IsEdit() {
		label = fmt.Sprintf("body of post #%d", m.postID)
	}
	cmd, tmpPath, err := m.editor.Cmd(label, m.body.Value())
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
