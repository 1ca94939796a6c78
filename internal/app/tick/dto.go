package tick

import (
	"orebound/internal/domain/mission"
	"orebound/internal/domain/news"
)

type Request struct {
	GameID string
	// Days of simulated time to advance. Real elapsed time times the
	// configured scale, supplied by the caller; must be positive.
	Days float64
}

type Response struct {
	SimDay    float64           `json:"sim_day"`
	Balance   float64           `json:"balance"`
	News      []news.NewsItem   `json:"news,omitempty"`
	Completed []mission.Mission `json:"completed,omitempty"`
}
