package app

import (
	"context"

	"github.com/CrestNiraj12/terminalboard/domain"
)

// CommentService mutates comments of a post. Reads happen through PostService.Detail.
type CommentService interface {
	// Create adds a comment and returns it with the id assigned by the backend.
	Create(ctx context.Context, postID int64, in domain.CommentInput) (domain.Comment, error)

	// Update changes a comment's contents and returns the updated comment.
	Update(ctx context.Context, postID int64, comment domain.Comment, contents string) (domain.Comment, error)

	// Delete removes a comment. Replies are not deleted.
	Delete(ctx context.Context, postID, commentID int64) error
}
