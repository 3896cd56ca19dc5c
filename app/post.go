package app

import (
	"context"

	"github.com/CrestNiraj12/terminalboard/domain"
)

// PostService lists, searches, and edits posts on the board backend.
type PostService interface {
	// List returns one page of the post list.
	List(ctx context.Context, page int) (domain.PostPage, error)

	// Search returns one page of posts matching query. An empty query returns
	// an empty page without contacting the backend.
	Search(ctx context.Context, st domain.SearchType, query string, page int) (domain.PostPage, error)

	// Detail returns a post together with its flat comment list.
	Detail(ctx context.Context, id int64) (domain.PostDetail, error)

	// Create publishes a new post and returns its id, or 0 when the backend
	// did not report one.
	Create(ctx context.Context, in domain.PostInput) (int64, error)

	// Update replaces a post's title and contents.
	Update(ctx context.Context, id int64, in domain.PostInput) (domain.PostDetail, error)

	// Delete removes a post.
	Delete(ctx context.Context, id int64) error

	// Like increments a post's like counter.
	Like(ctx context.Context, id int64) error

	// Dislike decrements a post's like counter.
	Dislike(ctx context.Context, id int64) error
}
