package postdetail

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalboard/domain"
)

type commentSavedMsg struct {
	postID  int64
	comment domain.Comment
	edited  bool
	err     error
}

type commentDeletedMsg struct {
	postID int64
	id     int64
	err    error
}

type voteResultMsg struct {
	postID int64
	like   bool
	err    error
}

type postDeleteResultMsg struct {
	postID int64
	err    error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

func (m Model) fetch() tea.Cmd {
	posts := m.posts
	id := m.postID
	return func() tea.Msg {
		d, err := posts.Detail(context.Background(), id)
		if err != nil {
			return DetailErrorMsg{PostID: id, Err: err}
		}
		return DetailLoadedMsg{PostID: id, Detail: d}
	}
}

func (m Model) createComment(in domain.CommentInput) tea.Cmd {
	svc := m.comments
	postID := m.postID
	return func() tea.Msg {
		c, err := svc.Create(context.Background(), postID, in)
		return commentSavedMsg{postID: postID, comment: c, err: err}
	}
}

func (m Model) updateComment(c domain.Comment, contents string) tea.Cmd {
	svc := m.comments
	postID := m.postID
	return func() tea.Msg {
		updated, err := svc.Update(context.Background(), postID, c, contents)
		return commentSavedMsg{postID: postID, comment: updated, edited: true, err: err}
	}
}

func (m Model) deleteComment(id int64) tea.Cmd {
	svc := m.comments
	postID := m.postID
	return func() tea.Msg {
		return commentDeletedMsg{postID: postID, id: id, err: svc.Delete(context.Background(), postID, id)}
	}
}

func (m Model) vote(like bool) tea.Cmd {
	posts := m.posts
	postID := m.postID
	return func() tea.Msg {
		var err error
		if like {
			err = posts.Like(context.Background(), postID)
		} else {
			err = posts.Dislike(context.Background(), postID)
		}
		return voteResultMsg{postID: postID, like: like, err: err}
	}
}

func (m Model) deletePost() tea.Cmd {
	posts := m.posts
	postID := m.postID
	return func() tea.Msg {
		return postDeleteResultMsg{postID: postID, err: posts.Delete(context.Background(), postID)}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
