package board

import (
	"context"
	"net/http"

	"github.com/CrestNiraj12/terminalboard/domain"
)

const rankingPath = "/api/ranking/"

// rankingService implements app.RankingService using the board API.
type rankingService struct {
	client *Client
}

// NewRankingService creates a RankingService backed by the board API.
func NewRankingService(client *Client) *rankingService {
	return &rankingService{client: client}
}

func (s *rankingService) Top(ctx context.Context, kind domain.RankingKind) ([]domain.RankingItem, error) {
	op := "ranking " + string(kind)
	resp, err := s.client.do(ctx, request{
		op:       op,
		method:   http.MethodGet,
		path:     rankingPath + string(kind),
		fallback: "Failed to load the " + string(kind) + " ranking.",
	})
	if err != nil {
		return nil, err
	}
	items, err := decode[[]domain.RankingItem](op, resp.body)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.RankingItem{}
	}
	return domain.TopRanking(items), nil
}
