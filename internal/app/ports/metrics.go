package ports

import (
	"orebound/internal/domain/combat"
	"orebound/internal/domain/mission"
	"orebound/internal/domain/news"
)

// SimMetrics counts the simulation's KPI events. Implementations must be
// cheap; they are called from inside the tick loop.
type SimMetrics interface {
	RecordLaunch()
	RecordTerminal(phase mission.Phase)
	RecordCombat(outcome combat.Outcome)
	RecordNews(category news.Category)
}
