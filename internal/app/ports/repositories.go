package ports

import (
	"context"

	"orebound/internal/domain/game"
	"orebound/internal/domain/news"
)

// GameStateRepository persists the full simulation state. Implementations
// materialize and store it through the versioned snapshot codec; the expected
// version guards against concurrent writers.
type GameStateRepository interface {
	Load(ctx context.Context, gameID string) (*game.State, error)
	SaveWithVersion(ctx context.Context, gameID string, state *game.State, expectedVersion int64) error
}

// NewsLogRepository is the append-only record of emitted news.
type NewsLogRepository interface {
	Append(ctx context.Context, gameID string, items []news.NewsItem) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]news.NewsItem, error)
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
