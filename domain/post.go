package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AppTitle is shown in every view header.
const AppTitle = "📋 TerminalBoard"

// PostLine is a single row of the post list.
type PostLine struct {
	PostID       int64  `json:"postId"`
	PostTitle    string `json:"postTitle"`
	CommentCount int    `json:"commentCount"`
	ViewCount    int    `json:"viewCount"`
}

// PostPage is one page of the post list or of a search result.
type PostPage struct {
	PostLines []PostLine `json:"postLines"`
	PageState PageState  `json:"pageState"`
}

// EmptyPostPage is returned for searches that never reach the backend.
func EmptyPostPage() PostPage {
	return PostPage{PostLines: []PostLine{}, PageState: EmptyPageState()}
}

// PostDetail is the full view of a post including its flat comment list.
type PostDetail struct {
	ID        int64
	Title     string
	Contents  string
	Comments  []Comment
	ViewCount int
	LikeCount int
}

type postDetailJSON struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Title     string    `json:"title"`
	Contents  string    `json:"contents"`
	Comments  []Comment `json:"comments"`
	ViewCount int       `json:"viewCount"`
	LikeCount int       `json:"likeCount"`
}

// UnmarshalJSON accepts both "id" and "postId"; older backends sent the latter.
func (p *PostDetail) UnmarshalJSON(data []byte) error {
	var raw postDetailJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id := raw.ID
	if id == 0 {
		id = raw.PostID
	}
	comments := raw.Comments
	if comments == nil {
		comments = []Comment{}
	}
	*p = PostDetail{
		ID:        id,
		Title:     raw.Title,
		Contents:  raw.Contents,
		Comments:  comments,
		ViewCount: raw.ViewCount,
		LikeCount: raw.LikeCount,
	}
	return nil
}

// MarshalJSON writes the canonical "id" form.
func (p PostDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(postDetailJSON{
		ID:        p.ID,
		Title:     p.Title,
		Contents:  p.Contents,
		Comments:  p.Comments,
		ViewCount: p.ViewCount,
		LikeCount: p.LikeCount,
	})
}

// PostInput is the body of create/update post requests.
type PostInput struct {
	Title    string `json:"title" validate:"required"`
	Contents string `json:"contents" validate:"required"`
}

// SearchType selects which post fields a search matches against.
type SearchType string

const (
	SearchTitle         SearchType = "title"
	SearchContents      SearchType = "contents"
	SearchTitleContents SearchType = "title_contents"
)

// DefaultSearchType is used when nothing else was chosen.
const DefaultSearchType = SearchTitleContents

var searchTypeOrder = []SearchType{SearchTitleContents, SearchTitle, SearchContents}

// ParseSearchType parses the wire value of a search type.
func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(strings.ToLower(strings.TrimSpace(s))) {
	case SearchTitle:
		return SearchTitle, nil
	case SearchContents:
		return SearchContents, nil
	case SearchTitleContents:
		return SearchTitleContents, nil
	}
	return "", fmt.Errorf("unknown search type %q", s)
}

// Next cycles through the search types in display order.
func (t SearchType) Next() SearchType {
	for i, st := range searchTypeOrder {
		if st == t {
			return searchTypeOrder[(i+1)%len(searchTypeOrder)]
		}
	}
	return DefaultSearchType
}

// Label is the human readable name of a search type.
func (t SearchType) Label() string {
	switch t {
	case SearchTitle:
		return "Title"
	case SearchContents:
		return "Contents"
	case SearchTitleContents:
		return "Title+Contents"
	}
	return string(t)
}
