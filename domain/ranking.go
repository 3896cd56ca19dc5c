package domain

// RankingLimit is how many entries a ranking panel shows.
const RankingLimit = 5

// RankingKind names a ranking endpoint.
type RankingKind string

const (
	RankingViews RankingKind = "views"
	RankingLikes RankingKind = "likes"
)

// Title is the panel heading for a ranking.
func (k RankingKind) Title() string {
	switch k {
	case RankingViews:
		return "Top 5 by views"
	case RankingLikes:
		return "Top 5 by likes"
	}
	return string(k)
}

// RankingItem is a single ranked post.
type RankingItem struct {
	PostID    int64  `json:"postId"`
	PostTitle string `json:"postTitle"`
	Count     int    `json:"count"`
}

// TopRanking trims a ranking to RankingLimit entries.
func TopRanking(items []RankingItem) []RankingItem {
	if len(items) <= RankingLimit {
		return items
	}
	return items[:RankingLimit]
}
