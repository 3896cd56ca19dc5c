package board

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/CrestNiraj12/terminalboard/domain"
)

const postsPath = "/post"

// postService implements app.PostService using the board API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the board API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

func postPath(id int64) string {
	return fmt.Sprintf("%s/%d", postsPath, id)
}

func pageQuery(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(page)}}
}

func (s *postService) List(ctx context.Context, page int) (domain.PostPage, error) {
	resp, err := s.client.do(ctx, request{
		op:       "list posts",
		method:   http.MethodGet,
		path:     postsPath,
		query:    pageQuery(page),
		fallback: "Failed to load the post list.",
	})
	if err != nil {
		return domain.PostPage{}, err
	}
	return decodePage("list posts", resp.body)
}

func (s *postService) Search(ctx context.Context, st domain.SearchType, query string, page int) (domain.PostPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.EmptyPostPage(), nil
	}
	if st == "" {
		st = domain.DefaultSearchType
	}
	q := pageQuery(page)
	q.Set("type", string(st))
	q.Set("query", query)

	resp, err := s.client.do(ctx, request{
		op:       "search posts",
		method:   http.MethodGet,
		path:     postsPath + "/search",
		query:    q,
		fallback: "Failed to search posts.",
	})
	if err != nil {
		return domain.PostPage{}, err
	}
	return decodePage("search posts", resp.body)
}

func decodePage(op string, data []byte) (domain.PostPage, error) {
	page, err := decode[domain.PostPage](op, data)
	if err != nil {
		return domain.PostPage{}, err
	}
	if page.PostLines == nil {
		page.PostLines = []domain.PostLine{}
	}
	return page, nil
}

func (s *postService) Detail(ctx context.Context, id int64) (domain.PostDetail, error) {
	resp, err := s.client.do(ctx, request{
		op:       "post detail",
		method:   http.MethodGet,
		path:     postPath(id),
		fallback: fmt.Sprintf("Failed to load post %d.", id),
	})
	if err != nil {
		return domain.PostDetail{}, err
	}
	detail, err := decode[domain.PostDetail]("post detail", resp.body)
	if err != nil {
		return domain.PostDetail{}, err
	}
	if detail.ID == 0 {
		detail.ID = id
	}
	return detail, nil
}

func (s *postService) Create(ctx context.Context, in domain.PostInput) (int64, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return 0, err
	}
	resp, err := s.client.do(ctx, request{
		op:       "create post",
		method:   http.MethodPost,
		path:     postsPath,
		body:     in,
		fallback: "Failed to create the post.",
		accept:   func(status int) bool { return status == http.StatusCreated },
	})
	if err != nil {
		return 0, err
	}
	return idFromLocation(resp.header.Get("Location")), nil
}

func (s *postService) Update(ctx context.Context, id int64, in domain.PostInput) (domain.PostDetail, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return domain.PostDetail{}, err
	}
	resp, err := s.client.do(ctx, request{
		op:       "update post",
		method:   http.MethodPut,
		path:     postPath(id),
		body:     in,
		fallback: fmt.Sprintf("Failed to update post %d.", id),
	})
	if err != nil {
		return domain.PostDetail{}, err
	}
	detail, err := decode[domain.PostDetail]("update post", resp.body)
	if err != nil {
		return domain.PostDetail{}, err
	}
	if detail.ID == 0 {
		detail.ID = id
	}
	return detail, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	_, err := s.client.do(ctx, request{
		op:       "delete post",
		method:   http.MethodDelete,
		path:     postPath(id),
		fallback: fmt.Sprintf("Failed to delete post %d.", id),
	})
	return err
}

func (s *postService) Like(ctx context.Context, id int64) error {
	_, err := s.client.do(ctx, request{
		op:       "like post",
		method:   http.MethodPost,
		path:     postPath(id) + "/like",
		fallback: "Failed to like the post.",
	})
	return err
}

func (s *postService) Dislike(ctx context.Context, id int64) error {
	_, err := s.client.do(ctx, request{
		op:       "dislike post",
		method:   http.MethodPost,
		path:     postPath(id) + "/dislike",
		fallback: "Failed to dislike the post.",
	})
	return err
}
