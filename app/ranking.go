package app

import (
	"context"

	"github.com/CrestNiraj12/terminalboard/domain"
)

// RankingService fetches the top posts of a ranking.
type RankingService interface {
	Top(ctx context.Context, kind domain.RankingKind) ([]domain.RankingItem, error)
}
