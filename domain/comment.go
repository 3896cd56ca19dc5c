package domain

import "time"

// Comment is a comment in the flat form delivered by the backend.
// ParentID is nil for root-level comments.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Contents  string    `json:"contents"`
	ParentID  *int64    `json:"parentId"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// IsReply reports whether the comment names a parent.
func (c Comment) IsReply() bool { return c.ParentID != nil }

// ParentRef returns a parent pointer for id, or nil for id <= 0.
func ParentRef(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// CommentInput is the body of create/update comment requests.
type CommentInput struct {
	Contents string `json:"contents" validate:"required"`
	ParentID *int64 `json:"parentId,omitempty"`
}
