package launch

import "orebound/internal/domain/mission"

type Request struct {
	GameID     string
	TargetID   string
	ProviderID string
	CrewID     string
	SecurityID string
	Contract   bool
}

// Response distinguishes expected rejections (Accepted=false with a Reason)
// from transport/storage errors, which surface as Go errors.
type Response struct {
	Accepted bool            `json:"accepted"`
	Rejected string          `json:"reason,omitempty"`
	Mission  mission.Mission `json:"mission,omitempty"`
	Balance  float64         `json:"balance"`
}
