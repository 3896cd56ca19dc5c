package postlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/domain"
)

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg:
		next, ok := m.state.Loaded(msg.ReqSeq, msg.Page)
		if !ok {
			return m, nil
		}
		m.state = next
		m.cursor = min(m.cursor, max(len(next.Posts)-1, 0))
		return m, nil

	case PageErrorMsg:
		next, ok := m.state.Failed(msg.ReqSeq, msg.Err)
		if !ok {
			return m, nil
		}
		m.state = next
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case searchMode:
			return m.updateSearch(msg)
		case jumpMode:
			return m.updateJump(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Posts)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selected(); ok {
			return m, emit(OpenPostMsg{ID: p.PostID})
		}
	case key.Matches(msg, m.keys.PrevPage):
		return m.navigate(m.state.Page - 1)
	case key.Matches(msg, m.keys.NextPage):
		return m.navigate(m.state.Page + 1)
	case key.Matches(msg, m.keys.PrevBlock):
		if w := m.state.Window(); w.HasPrevBlock() {
			return m.navigate(w.PrevTarget())
		}
	case key.Matches(msg, m.keys.NextBlock):
		if w := m.state.Window(); w.HasNextBlock() {
			return m.navigate(w.NextTarget())
		}
	case key.Matches(msg, m.keys.JumpPage):
		if !m.state.Window().ShowJump() || m.state.Loading() {
			return m, nil
		}
		m.mode = jumpMode
		m.jumpErr = ""
		m.jump.SetValue("")
		return m, m.jump.Focus()
	case key.Matches(msg, m.keys.Search):
		m.mode = searchMode
		m.search.SetValue(m.state.Query)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Back):
		if m.state.Searching() {
			m.state = m.state.SearchCleared()
			m.search.SetValue("")
			m.cursor = 0
			return m, tea.Batch(m.fetch(), m.spinner.Tick)
		}
	case key.Matches(msg, m.keys.NewPost):
		return m, emit(NewPostMsg{})
	case key.Matches(msg, m.keys.Rankings):
		return m, emit(OpenRankingsMsg{})
	case key.Matches(msg, m.keys.Refresh):
		return m.Reload()
	}
	return m, nil
}

// navigate requests page n. It is a no-op while a fetch is in flight and
// rejects pages outside the known range.
func (m Model) navigate(n int) (Model, tea.Cmd) {
	if m.state.Loading() {
		return m, nil
	}
	next, ok := m.state.PageChanged(n)
	if !ok {
		if n >= 1 {
			m.notice = fmt.Sprintf("No page %d.", n)
		}
		return m, nil
	}
	m.state = next
	m.cursor = 0
	return m, tea.Batch(m.fetch(), m.spinner.Tick)
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter:
		m.mode = browseMode
		m.search.Blur()
		m.state = m.state.SearchSubmitted(m.state.SearchType, m.search.Value())
		m.cursor = 0
		return m, tea.Batch(m.fetch(), m.spinner.Tick)
	case key.Matches(msg, m.keys.SearchType):
		m.state.SearchType = m.state.SearchType.Next()
		return m, emit(SearchTypeChangedMsg{Type: m.state.SearchType})
	case key.Matches(msg, m.keys.Back):
		m.mode = browseMode
		m.search.Blur()
		m.search.SetValue(m.state.Query)
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateJump(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter:
		n, err := m.state.Window().ParseJump(m.jump.Value())
		if err != nil {
			m.jumpErr = domain.UserMessage(err)
			m.jump.SetValue("")
			return m, nil
		}
		m.mode = browseMode
		m.jump.Blur()
		m.jump.SetValue("")
		m.jumpErr = ""
		return m.navigate(n)
	case key.Matches(msg, m.keys.Back):
		m.mode = browseMode
		m.jump.Blur()
		m.jumpErr = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}
