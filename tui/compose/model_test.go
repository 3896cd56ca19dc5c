package compose

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/domain"
)

type stubPosts struct {
	created *[]domain.PostInput
	updated *[]domain.PostInput
	err     error
}

func newStubPosts() stubPosts {
	return stubPosts{created: &[]domain.PostInput{}, updated: &[]domain.PostInput{}}
}

func (stubPosts) List(context.Context, int) (domain.PostPage, error) { return domain.PostPage{}, nil }
func (stubPosts) Search(context.Context, domain.SearchType, string, int) (domain.PostPage, error) {
	return domain.PostPage{}, nil
}
func (stubPosts) Detail(context.Context, int64) (domain.PostDetail, error) {
	return domain.PostDetail{}, nil
}
func (s stubPosts) Create(_ context.Context, in domain.PostInput) (int64, error) {
	*s.created = append(*s.created, in)
	return 42, s.err
}
func (s stubPosts) Update(_ context.Context, id int64, in domain.PostInput) (domain.PostDetail, error) {
	*s.updated = append(*s.updated, in)
	return domain.PostDetail{ID: id, Title: in.Title, Contents: in.Contents}, s.err
}
func (stubPosts) Delete(context.Context, int64) error  { return nil }
func (stubPosts) Like(context.Context, int64) error    { return nil }
func (stubPosts) Dislike(context.Context, int64) error { return nil }

type stubEditor struct {
	content string
}

func (stubEditor) Cmd(string, string) (*exec.Cmd, string, error) {
	return exec.Command("true"), "/tmp/none", nil
}
func (e stubEditor) ReadContent(string) (string, error) { return e.content, nil }

func ctrlS() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyCtrlS} }

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func run(m Model, cmd tea.Cmd) (Model, []tea.Msg) {
	var out []tea.Msg
	for cmd != nil {
		msg := cmd()
		out = append(out, msg)
		if _, ok := msg.(submitResultMsg); !ok {
			break
		}
		m, cmd = m.Update(msg)
	}
	return m, out
}

func TestSubmit_EmptyTitleRejectedWithoutRequest(t *testing.T) {
	posts := newStubPosts()
	m := NewPost(posts, stubEditor{})
	m, cmd := m.Update(ctrlS())
	if cmd != nil {
		t.Fatalf("expected no request")
	}
	if !errors.Is(m.err, domain.ErrEmptyTitle) {
		t.Fatalf("expected empty title error, got %v", m.err)
	}
	if !strings.Contains(m.View(), "Title cannot be empty") {
		t.Fatalf("error should render inline")
	}
	if len(*posts.created) != 0 {
		t.Fatalf("nothing should be created")
	}
}

func TestSubmit_EmptyBodyRejected(t *testing.T) {
	m := NewPost(newStubPosts(), stubEditor{})
	m = typeText(m, "hello")
	m, _ = m.Update(ctrlS())
	if !errors.Is(m.err, domain.ErrEmptyContents) {
		t.Fatalf("expected empty contents error, got %v", m.err)
	}
}

func TestSubmit_CreatesPost(t *testing.T) {
	posts := newStubPosts()
	m := NewPost(posts, stubEditor{})
	m = typeText(m, " hello ")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "body text")

	m, cmd := m.Update(ctrlS())
	if !m.submitting {
		t.Fatalf("expected submitting state")
	}
	_, msgs := run(m, cmd)

	if len(*posts.created) != 1 || (*posts.created)[0] != (domain.PostInput{Title: "hello", Contents: "body text"}) {
		t.Fatalf("unexpected create: %+v", *posts.created)
	}
	last := msgs[len(msgs)-1].(DoneMsg)
	if last.PostID != 42 || last.IsEdit || last.Cancelled {
		t.Fatalf("unexpected done msg: %+v", last)
	}
}

func TestSubmit_BackendErrorKeepsForm(t *testing.T) {
	posts := newStubPosts()
	posts.err = &domain.HTTPError{Status: 500, Body: "board is read-only"}
	m := NewPost(posts, stubEditor{})
	m = typeText(m, "t")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "b")

	m, cmd := m.Update(ctrlS())
	m, msgs := run(m, cmd)
	for _, msg := range msgs {
		if _, ok := msg.(DoneMsg); ok {
			t.Fatalf("form must stay open on error")
		}
	}
	if m.submitting || !strings.Contains(m.View(), "board is read-only") {
		t.Fatalf("expected backend message inline")
	}
}

func TestEdit_UnchangedIsCancel(t *testing.T) {
	posts := newStubPosts()
	m := EditPost(posts, stubEditor{}, domain.PostDetail{ID: 7, Title: "t", Contents: "b"})
	_, cmd := m.Update(ctrlS())
	msg := cmd().(DoneMsg)
	if !msg.Cancelled || !msg.IsEdit || msg.PostID != 7 {
		t.Fatalf("unexpected done msg: %+v", msg)
	}
	if len(*posts.updated) != 0 {
		t.Fatalf("unchanged post must not be sent")
	}
}

func TestEdit_SendsUpdate(t *testing.T) {
	posts := newStubPosts()
	m := EditPost(posts, stubEditor{}, domain.PostDetail{ID: 7, Title: "t", Contents: "b"})
	m = typeText(m, "2")
	m, cmd := m.Update(ctrlS())
	_, msgs := run(m, cmd)
	if len(*posts.updated) != 1 || (*posts.updated)[0].Title != "t2" {
		t.Fatalf("unexpected update: %+v", *posts.updated)
	}
	if done := msgs[len(msgs)-1].(DoneMsg); done.PostID != 7 || !done.IsEdit {
		t.Fatalf("unexpected done msg: %+v", done)
	}
}

func TestEditorResultReplacesBody(t *testing.T) {
	m := NewPost(newStubPosts(), stubEditor{content: "from editor"})
	m, _ = m.Update(editorFinishedMsg{tmpPath: "/tmp/none"})
	if m.body.Value() != "from editor" {
		t.Fatalf("unexpected body: %q", m.body.Value())
	}

	m2 := NewPost(newStubPosts(), stubEditor{})
	m2.body.SetValue("keep")
	m2, _ = m2.Update(editorFinishedMsg{tmpPath: "/tmp/none"})
	if m2.body.Value() != "keep" {
		t.Fatalf("empty editor result should keep the body: %q", m2.body.Value())
	}
}

func TestEscCancels(t *testing.T) {
	m := NewPost(newStubPosts(), stubEditor{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if msg := cmd().(DoneMsg); !msg.Cancelled {
		t.Fatalf("expected cancel, got %+v", msg)
	}
}
