package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDetail_AcceptsIDOrPostID(t *testing.T) {
	var a, b PostDetail
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"title":"t","contents":"c","viewCount":3}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"postId":6,"title":"t","contents":"c","likeCount":2,
		"comments":[{"id":1,"postId":6,"contents":"x","parentId":null},{"id":2,"postId":6,"contents":"y","parentId":1}]}`), &b))

	assert.Equal(t, int64(5), a.ID)
	assert.Equal(t, 3, a.ViewCount)
	assert.NotNil(t, a.Comments)

	assert.Equal(t, int64(6), b.ID)
	assert.Equal(t, 2, b.LikeCount)
	require.Len(t, b.Comments, 2)
	assert.Nil(t, b.Comments[0].ParentID)
	require.NotNil(t, b.Comments[1].ParentID)
	assert.Equal(t, int64(1), *b.Comments[1].ParentID)
}

func TestEmptyPostPage(t *testing.T) {
	p := EmptyPostPage()
	assert.Empty(t, p.PostLines)
	assert.Equal(t, 1, p.PageState.CurrentPage)
	assert.Equal(t, 0, p.PageState.TotalPages)
}

func TestTopRanking(t *testing.T) {
	items := make([]RankingItem, 8)
	assert.Len(t, TopRanking(items), RankingLimit)
	assert.Len(t, TopRanking(items[:2]), 2)
}
