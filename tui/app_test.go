package tui

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/infra/config"
	"github.com/CrestNiraj12/terminalboard/tui/compose"
	"github.com/CrestNiraj12/terminalboard/tui/postdetail"
	"github.com/CrestNiraj12/terminalboard/tui/postlist"
	"github.com/CrestNiraj12/terminalboard/tui/ranking"
)

type stubPosts struct{}

func (stubPosts) List(_ context.Context, page int) (domain.PostPage, error) {
	return domain.PostPage{
		PostLines: []domain.PostLine{{PostID: 1, PostTitle: "hello"}},
		PageState: domain.PageState{CurrentPage: page, TotalPages: 3, StartPage: 1, EndPage: 3, PrevBlockPage: 1, NextBlockPage: 3},
	}, nil
}
func (s stubPosts) Search(ctx context.Context, _ domain.SearchType, _ string, page int) (domain.PostPage, error) {
	return s.List(ctx, page)
}
func (stubPosts) Detail(_ context.Context, id int64) (domain.PostDetail, error) {
	return domain.PostDetail{ID: id, Title: "hello", Contents: "body", Comments: []domain.Comment{}}, nil
}
func (stubPosts) Create(context.Context, domain.PostInput) (int64, error) { return 9, nil }
func (stubPosts) Update(_ context.Context, id int64, in domain.PostInput) (domain.PostDetail, error) {
	return domain.PostDetail{ID: id, Title: in.Title, Contents: in.Contents}, nil
}
func (stubPosts) Delete(context.Context, int64) error  { return nil }
func (stubPosts) Like(context.Context, int64) error    { return nil }
func (stubPosts) Dislike(context.Context, int64) error { return nil }

type stubComments struct{}

func (stubComments) Create(_ context.Context, postID int64, in domain.CommentInput) (domain.Comment, error) {
	return domain.Comment{ID: 1, PostID: postID, Contents: in.Contents, ParentID: in.ParentID}, nil
}
func (stubComments) Update(_ context.Context, _ int64, c domain.Comment, contents string) (domain.Comment, error) {
	c.Contents = contents
	return c, nil
}
func (stubComments) Delete(context.Context, int64, int64) error { return nil }

type stubRankings struct{}

func (stubRankings) Top(context.Context, domain.RankingKind) ([]domain.RankingItem, error) {
	return []domain.RankingItem{{PostID: 3, PostTitle: "top", Count: 10}}, nil
}

type stubEditor struct{}

func (stubEditor) Cmd(string, string) (*exec.Cmd, string, error) {
	return exec.Command("true"), "", nil
}

func (stubEditor) ReadContent(string) (string, error) {
	return "", nil
}

func newTestApp(t *testing.T) App {
	t.Helper()
	return NewApp(Deps{
		Posts:     stubPosts{},
		Comments:  stubComments{},
		Rankings:  stubRankings{},
		Editor:    stubEditor{},
		StatePath: filepath.Join(t.TempDir(), "ui_state.json"),
	})
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	out, ok := m.(App)
	if !ok {
		t.Fatalf("expected App, got %T", m)
	}
	return out, cmd
}

func TestApp_QuitFromList(t *testing.T) {
	a := newTestApp(t)
	_, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestApp_OpenPostShowsDetail(t *testing.T) {
	a := newTestApp(t)
	a, cmd := update(t, a, postlist.OpenPostMsg{ID: 4})
	if a.active != detailView || a.detail.PostID() != 4 || cmd == nil {
		t.Fatalf("expected detail view for post 4")
	}

	a, _ = update(t, a, postdetail.BackMsg{})
	if a.active != listView {
		t.Fatalf("expected list after back")
	}
}

func listPage(t *testing.T, page int) domain.PostPage {
	t.Helper()
	p, err := stubPosts{}.List(context.Background(), page)
	if err != nil {
		t.Fatalf("list page %d: %v", page, err)
	}
	return p
}

func TestApp_LatePageResponseReachesListBehindDetail(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, postlist.PageLoadedMsg{Page: listPage(t, 1), ReqSeq: a.list.State().ReqSeq})
	if a.list.State().Phase != postlist.PhaseReady {
		t.Fatalf("expected first page loaded, got %v", a.list.State().Phase)
	}

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	if cmd == nil || !a.list.State().Loading() {
		t.Fatalf("expected page 2 fetch in flight")
	}
	pending := a.list.State().ReqSeq

	a, _ = update(t, a, postlist.OpenPostMsg{ID: 1})
	if a.active != detailView {
		t.Fatalf("expected detail view")
	}
	a, _ = update(t, a, postlist.PageLoadedMsg{Page: listPage(t, 2), ReqSeq: pending})
	if a.active != detailView {
		t.Fatalf("a list result must not switch views")
	}

	a, _ = update(t, a, postdetail.BackMsg{})
	st := a.list.State()
	if a.active != listView || st.Phase != postlist.PhaseReady || st.Page != 2 {
		t.Fatalf("list should show page 2 after back: active=%v phase=%v page=%d", a.active, st.Phase, st.Page)
	}

	a, cmd = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	if cmd == nil || a.list.State().Page != 3 {
		t.Fatalf("navigation should work again: %+v", a.list.State())
	}
}

func TestApp_LatePageErrorReachesListBehindRankings(t *testing.T) {
	a := newTestApp(t)
	pending := a.list.State().ReqSeq
	a, _ = update(t, a, postlist.OpenRankingsMsg{})
	a, _ = update(t, a, postlist.PageErrorMsg{Err: &domain.NetworkError{Op: "list posts"}, ReqSeq: pending})
	if a.active != rankingView {
		t.Fatalf("expected ranking view to stay active")
	}
	if st := a.list.State(); st.Phase != postlist.PhaseErrored {
		t.Fatalf("list should record the error, got %v", st.Phase)
	}
}

func TestApp_RankingOpenPost(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, postlist.OpenRankingsMsg{})
	if a.active != rankingView {
		t.Fatalf("expected ranking view")
	}
	a, _ = update(t, a, ranking.OpenPostMsg{ID: 3})
	if a.active != detailView || a.detail.PostID() != 3 {
		t.Fatalf("expected detail of ranked post")
	}
}

func TestApp_ComposeFlow(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, postlist.NewPostMsg{})
	if a.active != composeView {
		t.Fatalf("expected compose view")
	}

	a, _ = update(t, a, compose.DoneMsg{Cancelled: true})
	if a.active != listView || a.status != "Cancelled." {
		t.Fatalf("cancel should return to list: active=%v status=%q", a.active, a.status)
	}

	a, _ = update(t, a, postlist.NewPostMsg{})
	a, cmd := update(t, a, compose.DoneMsg{PostID: 9})
	if a.active != listView || !strings.Contains(a.status, "#9") || cmd == nil {
		t.Fatalf("create should return to list with a reload: status=%q", a.status)
	}
	if a.list.State().Page != 1 || !a.list.State().Loading() {
		t.Fatalf("list should reload page 1: %+v", a.list.State())
	}
}

func TestApp_EditPostReturnsToDetail(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, postlist.OpenPostMsg{ID: 4})
	a, _ = update(t, a, postdetail.EditPostMsg{Post: domain.PostDetail{ID: 4, Title: "t", Contents: "b"}})
	if a.active != composeView || !a.compose.IsEdit() {
		t.Fatalf("expected edit form")
	}
	a, cmd := update(t, a, compose.DoneMsg{PostID: 4, IsEdit: true})
	if a.active != detailView || cmd == nil {
		t.Fatalf("expected detail reload after edit")
	}
}

func TestApp_PostDeletedReloadsList(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, postlist.OpenPostMsg{ID: 4})
	a, cmd := update(t, a, postdetail.PostDeletedMsg{ID: 4})
	if a.active != listView || cmd == nil || !strings.Contains(a.View(), "Post #4 deleted.") {
		t.Fatalf("expected list with status after delete")
	}
}

func TestApp_SearchTypePersisted(t *testing.T) {
	a := newTestApp(t)
	_, cmd := update(t, a, postlist.SearchTypeChangedMsg{Type: domain.SearchContents})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("save failed: %#v", msg)
	}
	st, err := config.LoadUIState(a.deps.StatePath)
	if err != nil || st.SearchType != string(domain.SearchContents) {
		t.Fatalf("unexpected persisted state: %+v err=%v", st, err)
	}
}

func TestApp_RecoveryScreen(t *testing.T) {
	a := newTestApp(t)
	a = a.recovered("index out of range")
	if a.active != recoveryView {
		t.Fatalf("expected recovery view")
	}
	view := a.View()
	if !strings.Contains(view, "Something went wrong.") || !strings.Contains(view, "index out of range") {
		t.Fatalf("unexpected recovery view:\n%s", view)
	}

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if a.active != listView || a.crash.reason != "" || cmd == nil {
		t.Fatalf("r should reload the list")
	}

	a = a.recovered("again")
	a, cmd = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	if a.active != listView || a.list.State().Page != 1 || cmd == nil {
		t.Fatalf("h should go home")
	}
}

func TestApp_PanicInViewSwitchesNextUpdate(t *testing.T) {
	a := newTestApp(t)
	a.crash.reason = "render failed"
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if a.active != recoveryView {
		t.Fatalf("expected recovery view after a view panic")
	}
}
