package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_MessagePrefersBody(t *testing.T) {
	e := &HTTPError{Op: "list posts", Status: 500, Body: "database down", Default: "Failed to load posts."}
	assert.Equal(t, "database down", e.Message())

	e.Body = "  "
	assert.Equal(t, "Failed to load posts.", e.Message())
}

func TestHTTPError_NotFound(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &HTTPError{Status: 404})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, &HTTPError{Status: 500}, ErrNotFound)
}

func TestUserMessage_BranchesOnKind(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, NetworkMessage, UserMessage(&NetworkError{Op: "get", Err: errors.New("dial tcp")}))
	assert.Equal(t, "nope", UserMessage(fmt.Errorf("x: %w", &HTTPError{Status: 400, Body: "nope"})))
	assert.Equal(t, "Title cannot be empty", UserMessage(&ValidationError{Field: "title", Err: ErrEmptyTitle}))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}

func TestInputValidation(t *testing.T) {
	assert.NoError(t, PostInput{Title: "t", Contents: "c"}.Validate())

	err := PostInput{Title: "  ", Contents: "c"}.Validate()
	assert.ErrorIs(t, err, ErrEmptyTitle)

	err = PostInput{Title: "t", Contents: "\n"}.Validate()
	var ve *ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "contents", ve.Field)
	}

	assert.ErrorIs(t, CommentInput{Contents: " "}.Validate(), ErrEmptyContents)
	assert.NoError(t, CommentInput{Contents: "hi", ParentID: ParentRef(3)}.Validate())
}

func TestSearchType_ParseAndCycle(t *testing.T) {
	st, err := ParseSearchType(" Title ")
	assert.NoError(t, err)
	assert.Equal(t, SearchTitle, st)

	_, err = ParseSearchType("author")
	assert.Error(t, err)

	assert.Equal(t, SearchTitle, SearchTitleContents.Next())
	assert.Equal(t, SearchContents, SearchTitle.Next())
	assert.Equal(t, SearchTitleContents, SearchContents.Next())
	assert.Equal(t, DefaultSearchType, SearchType("bogus").Next())
}
