package postlist

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/domain"
)

// fetch loads the page described by the current state. The request seq is
// captured now so the result can be matched against later navigation.
func (m Model) fetch() tea.Cmd {
	posts := m.posts
	seq := m.state.ReqSeq
	page := m.state.Page
	query := m.state.Query
	st := m.state.SearchType
	return func() tea.Msg {
		var (
			res domain.PostPage
			err error
		)
		if query != "" {
			res, err = posts.Search(context.Background(), st, query, page)
		} else {
			res, err = posts.List(context.Background(), page)
		}
		if err != nil {
			return PageErrorMsg{Err: err, ReqSeq: seq}
		}
		return PageLoadedMsg{Page: res, ReqSeq: seq}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
