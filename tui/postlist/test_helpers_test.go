package postlist

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/domain"
)

type listCall struct {
	search bool
	st     domain.SearchType
	query  string
	page   int
}

type stubPosts struct {
	calls *[]listCall
	total int
}

func newStubPosts(total int) stubPosts {
	return stubPosts{calls: &[]listCall{}, total: total}
}

func (s stubPosts) pageOf(n int) domain.PostPage {
	start := ((n-1)/10)*10 + 1
	end := min(start+9, s.total)
	return domain.PostPage{
		PostLines: []domain.PostLine{
			{PostID: int64(n*100 + 1), PostTitle: fmt.Sprintf("post on page %d", n)},
			{PostID: int64(n*100 + 2), PostTitle: "another"},
		},
		PageState: domain.PageState{
			CurrentPage: n, TotalPages: s.total, StartPage: start, EndPage: end,
			PrevBlockPage: max(start-1, 1), NextBlockPage: min(end+1, s.total),
		},
	}
}

func (s stubPosts) List(_ context.Context, page int) (domain.PostPage, error) {
	*s.calls = append(*s.calls, listCall{page: page})
	return s.pageOf(page), nil
}

func (s stubPosts) Search(_ context.Context, st domain.SearchType, q string, page int) (domain.PostPage, error) {
	*s.calls = append(*s.calls, listCall{search: true, st: st, query: q, page: page})
	return s.pageOf(page), nil
}

func (stubPosts) Detail(context.Context, int64) (domain.PostDetail, error) {
	return domain.PostDetail{}, nil
}
func (stubPosts) Create(context.Context, domain.PostInput) (int64, error) { return 0, nil }
func (stubPosts) Update(context.Context, int64, domain.PostInput) (domain.PostDetail, error) {
	return domain.PostDetail{}, nil
}
func (stubPosts) Delete(context.Context, int64) error  { return nil }
func (stubPosts) Like(context.Context, int64) error    { return nil }
func (stubPosts) Dislike(context.Context, int64) error { return nil }

// drain runs cmd and every command it batches, returning the messages.
// Only use it on commands known to return immediately.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// feed applies every page message produced by cmd.
func feed(m Model, cmd tea.Cmd) Model {
	for _, msg := range drain(cmd) {
		switch msg.(type) {
		case PageLoadedMsg, PageErrorMsg:
			m, _ = m.Update(msg)
		}
	}
	return m
}

func loaded(total int) (Model, stubPosts) {
	posts := newStubPosts(total)
	m := New(posts, "")
	m = feed(m, m.Init())
	return m, posts
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}
