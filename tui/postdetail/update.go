package postdetail

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/domain"
)

const goneNotice = "That comment no longer exists."

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncViewport()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.form.SetWidth(max(min(msg.Width-4, 100), 20))
		return m, nil

	case spinner.TickMsg:
		if m.phase != loadingPhase {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DetailLoadedMsg:
		if msg.PostID != m.postID {
			return m, nil
		}
		m.phase = readyPhase
		m.busy = false
		m.err = nil
		m.detail = msg.Detail
		m.setComments(msg.Detail.Comments, 0)
		return m, nil

	case DetailErrorMsg:
		if msg.PostID != m.postID {
			return m, nil
		}
		m.busy = false
		if m.phase == readyPhase {
			// keep the post on screen; only the refresh failed
			m.notice = domain.UserMessage(msg.Err)
			return m, nil
		}
		m.phase = erroredPhase
		m.err = msg.Err
		return m, nil

	case commentSavedMsg:
		if msg.postID != m.postID {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.formErr = msg.err
			return m, nil
		}
		if msg.edited {
			list, ok := domain.ReplaceComment(m.flat, msg.comment)
			if !ok {
				m.closeForm()
				m.notice = goneNotice
				return m, nil
			}
			m.setComments(list, msg.comment.ID)
			m.notice = "Comment updated."
		} else {
			m.setComments(domain.AppendComment(m.flat, msg.comment), msg.comment.ID)
			m.notice = "Comment added."
		}
		m.dirty = true
		m.closeForm()
		return m, nil

	case commentDeletedMsg:
		if msg.postID != m.postID {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.notice = domain.UserMessage(msg.err)
			return m, nil
		}
		list, _ := domain.RemoveComment(m.flat, msg.id)
		m.setComments(list, 0)
		m.dirty = true
		m.notice = "Comment deleted."
		return m, nil

	case voteResultMsg:
		if msg.postID != m.postID {
			return m, nil
		}
		if msg.err != nil {
			m.busy = false
			m.notice = domain.UserMessage(msg.err)
			return m, nil
		}
		m.dirty = true
		if msg.like {
			m.notice = "Liked."
		} else {
			m.notice = "Disliked."
		}
		return m.Reload()

	case postDeleteResultMsg:
		if msg.postID != m.postID {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.notice = domain.UserMessage(msg.err)
			return m, nil
		}
		return m, emit(PostDeletedMsg{ID: m.postID})

	case editorFinishedMsg:
		if msg.err != nil {
			m.formErr = fmt.Errorf("editor: %w", msg.err)
			return m, nil
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			m.formErr = err
			return m, nil
		}
		if content != "" {
			m.form.SetValue(content)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case formMode:
			return m.updateForm(msg)
		case confirmCommentDelete, confirmPostDelete:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == formMode {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		return m, emit(BackMsg{Dirty: m.dirty})
	}
	if m.phase == erroredPhase {
		if key.Matches(msg, m.keys.Refresh) {
			m.phase = loadingPhase
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.fetch())
		}
		return m, nil
	}
	if m.phase != readyPhase || m.busy {
		return m, nil
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.viewport.SetYOffset(m.viewport.YOffset - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.lines)-1 {
			m.cursor++
		} else {
			m.viewport.SetYOffset(m.viewport.YOffset + 1)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m.Reload()
	case key.Matches(msg, m.keys.Comment):
		return m.openForm(formTarget{}, "")
	case key.Matches(msg, m.keys.Reply):
		line, ok := m.selected()
		if !ok {
			return m, nil
		}
		// Replies nest one level: only top-level comments take replies.
		if line.Depth > 0 {
			m.notice = "Replies go under the top-level comment."
			return m, nil
		}
		return m.openForm(formTarget{parentID: domain.ParentRef(line.Comment.ID)}, "")
	case key.Matches(msg, m.keys.EditComment):
		if line, ok := m.selected(); ok {
			return m.openForm(formTarget{editingID: line.Comment.ID}, line.Comment.Contents)
		}
	case key.Matches(msg, m.keys.DeleteComment):
		if _, ok := m.selected(); ok {
			m.mode = confirmCommentDelete
		}
	case key.Matches(msg, m.keys.EditPost):
		return m, emit(EditPostMsg{Post: m.detail})
	case key.Matches(msg, m.keys.DeletePost):
		m.mode = confirmPostDelete
	case key.Matches(msg, m.keys.Like):
		m.busy = true
		return m, m.vote(true)
	case key.Matches(msg, m.keys.Dislike):
		m.busy = true
		return m, m.vote(false)
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		pending := m.mode
		m.mode = browseMode
		m.busy = true
		if pending == confirmPostDelete {
			return m, m.deletePost()
		}
		line, ok := m.selected()
		if !ok {
			m.busy = false
			return m, nil
		}
		return m, m.deleteComment(line.Comment.ID)
	case key.Matches(msg, m.keys.Cancel):
		m.mode = browseMode
	}
	return m, nil
}

func (m Model) openForm(t formTarget, initial string) (Model, tea.Cmd) {
	m.mode = formMode
	m.target = t
	m.formErr = nil
	m.form.SetValue(initial)
	return m, m.form.Focus()
}

func (m *Model) closeForm() {
	m.mode = browseMode
	m.target = formTarget{}
	m.formErr = nil
	m.form.Reset()
	m.form.Blur()
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.OpenEditor):
		return m, m.launchEditor()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// submitForm validates the comment locally and only then sends it.
func (m Model) submitForm() (Model, tea.Cmd) {
	in := domain.CommentInput{Contents: m.form.Value(), ParentID: m.target.parentID}.Normalize()
	if err := in.Validate(); err != nil {
		m.formErr = err
		return m, nil
	}
	m.formErr = nil

	if id := m.target.editingID; id != 0 {
		c, ok := domain.FindComment(m.flat, id)
		if !ok {
			m.closeForm()
			m.notice = goneNotice
			return m, nil
		}
		if c.Contents == in.Contents {
			m.closeForm()
			return m, nil
		}
		m.busy = true
		return m, m.updateComment(c, in.Contents)
	}
	m.busy = true
	return m, m.createComment(in)
}

func (m Model) launchEditor() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	cmd, tmpPath, err := m.editor.Cmd(m.formLabel(), m.form.Value())
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

func (m Model) formLabel() string {
	switch {
	case m.target.editingID != 0:
		return fmt.Sprintf("comment #%d", m.target.editingID)
	case m.target.parentID != nil:
		return fmt.Sprintf("reply to #%d", *m.target.parentID)
	}
	return fmt.Sprintf("comment on post #%d", m.postID)
}
