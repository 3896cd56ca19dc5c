package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CrestNiraj12/terminalboard/domain"
)

// commentService implements app.CommentService using the board API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the board API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

func commentsPath(postID int64) string {
	return postPath(postID) + "/comments"
}

func commentPath(postID, commentID int64) string {
	return fmt.Sprintf("%s/%d", commentsPath(postID), commentID)
}

// Create posts a new comment. Backends answer either with the stored comment
// or with only a Location header; in the latter case the comment is rebuilt
// from the request and the id in the header.
func (s *commentService) Create(ctx context.Context, postID int64, in domain.CommentInput) (domain.Comment, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return domain.Comment{}, err
	}
	resp, err := s.client.do(ctx, request{
		op:       "create comment",
		method:   http.MethodPost,
		path:     commentsPath(postID),
		body:     in,
		fallback: fmt.Sprintf("Failed to add a comment to post %d.", postID),
		accept:   func(status int) bool { return status == http.StatusCreated },
	})
	if err != nil {
		return domain.Comment{}, err
	}

	if c, ok := commentFromBody(resp.body); ok {
		if c.PostID == 0 {
			c.PostID = postID
		}
		return c, nil
	}

	id := idFromLocation(resp.header.Get("Location"))
	if id == 0 {
		return domain.Comment{}, fmt.Errorf("create comment: backend returned neither a comment nor a Location")
	}
	return domain.Comment{
		ID:       id,
		PostID:   postID,
		Contents: in.Contents,
		ParentID: in.ParentID,
	}, nil
}

// Update changes a comment's contents. The response body varies between
// backend revisions: the comment, the whole post, or nothing at all.
func (s *commentService) Update(ctx context.Context, postID int64, comment domain.Comment, contents string) (domain.Comment, error) {
	in := domain.CommentInput{Contents: contents}.Normalize()
	if err := in.Validate(); err != nil {
		return domain.Comment{}, err
	}
	body := struct {
		Contents string `json:"contents"`
	}{in.Contents}
	resp, err := s.client.do(ctx, request{
		op:       "update comment",
		method:   http.MethodPut,
		path:     commentPath(postID, comment.ID),
		body:     body,
		fallback: fmt.Sprintf("Failed to update comment %d.", comment.ID),
	})
	if err != nil {
		return domain.Comment{}, err
	}

	if c, ok := commentFromBody(resp.body); ok && c.ID == comment.ID {
		return mergeComment(comment, c), nil
	}
	if detail, ok := detailFromBody(resp.body); ok {
		if c, found := domain.FindComment(detail.Comments, comment.ID); found {
			return mergeComment(comment, c), nil
		}
	}
	updated := comment
	updated.Contents = in.Contents
	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, postID, commentID int64) error {
	_, err := s.client.do(ctx, request{
		op:       "delete comment",
		method:   http.MethodDelete,
		path:     commentPath(postID, commentID),
		fallback: fmt.Sprintf("Failed to delete comment %d.", commentID),
	})
	return err
}

// commentFromBody decodes a single comment object. A post detail also has
// "id" and "contents", so bodies carrying a "comments" array are rejected.
func commentFromBody(body []byte) (domain.Comment, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return domain.Comment{}, false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return domain.Comment{}, false
	}
	if _, isPost := probe["comments"]; isPost {
		return domain.Comment{}, false
	}
	var c domain.Comment
	if err := json.Unmarshal(body, &c); err != nil || c.ID == 0 {
		return domain.Comment{}, false
	}
	return c, true
}

func detailFromBody(body []byte) (domain.PostDetail, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return domain.PostDetail{}, false
	}
	var d domain.PostDetail
	if err := json.Unmarshal(body, &d); err != nil {
		return domain.PostDetail{}, false
	}
	return d, true
}

// mergeComment fills fields the backend left out with the local values.
func mergeComment(local, remote domain.Comment) domain.Comment {
	if remote.PostID == 0 {
		remote.PostID = local.PostID
	}
	if remote.ParentID == nil {
		remote.ParentID = local.ParentID
	}
	if remote.Author == "" {
		remote.Author = local.Author
	}
	if remote.CreatedAt.IsZero() {
		remote.CreatedAt = local.CreatedAt
	}
	return remote
}
