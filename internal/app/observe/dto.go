package observe

import (
	"time"

	"orebound/internal/domain/mission"
)

type Request struct {
	GameID string
}

type CommodityView struct {
	Resource  string  `json:"resource"`
	SpotPrice float64 `json:"spot_price"`
	BasePrice float64 `json:"base_price"`
	Trend     string  `json:"trend"`
}

type Response struct {
	SimDay           float64           `json:"sim_day"`
	Date             time.Time         `json:"date"`
	Balance          float64           `json:"balance"`
	Level            int               `json:"level"`
	Missions         []mission.Mission `json:"missions"`
	Market           []CommodityView   `json:"market"`
	AvailableTargets []string          `json:"available_targets,omitempty"`
	BlockedTargets   []string          `json:"blocked_targets,omitempty"`
	DepletedTargets  []string          `json:"depleted_targets,omitempty"`
}
