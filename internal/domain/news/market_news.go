package news

import "orebound/internal/domain/market"

// MarketNews phrases the biggest of this tick's market swings as a news item.
// Cooldown gating stays with the caller via CanShowNews/RecordNewsShown.
func (s *Scheduler) MarketNews(headlines []market.Headline, now float64) (NewsItem, bool) {
	if len(headlines) == 0 {
		return NewsItem{}, false
	}
	best := headlines[0]
	for _, h := range headlines[1:] {
		if abs(h.Change) > abs(best.Change) {
			best = h
		}
	}
	return newItem(CategoryMarket, now, best.Text), true
}

// Item builds a news item in a given category for externally phrased facts,
// such as mission outcomes reported by the orchestrator.
func Item(category Category, now float64, text string) NewsItem {
	return newItem(category, now, text)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
