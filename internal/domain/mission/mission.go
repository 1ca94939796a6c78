package mission

import (
	"orebound/internal/domain/combat"
	"orebound/internal/domain/market"
)

// AmbushLeg records which trip leg a pirate ambush interrupted, so a defeated
// ambush resumes the right phase.
type AmbushLeg string

const (
	AmbushNone     AmbushLeg = ""
	AmbushOutbound AmbushLeg = "outbound"
	AmbushInbound  AmbushLeg = "inbound"
)

// Mission is one launched expedition. Created at the launch decision, mutated
// every tick by the phase engine, removed once terminal.
type Mission struct {
	ID       string           `json:"id"`
	TargetID string           `json:"target_id"`
	Resource market.Commodity `json:"resource"`

	Phase             Phase   `json:"phase"`
	PhaseStartDay     float64 `json:"phase_start_day"`
	PhaseDurationDays float64 `json:"phase_duration_days"`

	ProviderReliability float64 `json:"provider_reliability"`
	CrewReliability     float64 `json:"crew_reliability"`

	// Contract missions sell at spot x premium; the rest sell at spot.
	// The premium is drawn once at creation.
	Contract        bool    `json:"contract"`
	ContractPremium float64 `json:"contract_premium,omitempty"`

	AccumulatedCost float64 `json:"accumulated_cost"`
	ExpectedTonnes  float64 `json:"expected_tonnes"`
	ActualTonnes    float64 `json:"actual_tonnes"`

	SecurityID string         `json:"security_id,omitempty"`
	Ambush     AmbushLeg      `json:"ambush,omitempty"`
	Combat     *combat.Result `json:"combat,omitempty"`

	CreatedDay float64 `json:"created_day"`
}

// PhaseComplete reports whether the current phase's duration has elapsed.
func (m Mission) PhaseComplete(now float64) bool {
	return now-m.PhaseStartDay >= m.PhaseDurationDays
}

func (m Mission) Terminal() bool {
	def, ok := Definition(m.Phase)
	return ok && def.Terminal
}

func (m Mission) Succeeded() bool {
	def, ok := Definition(m.Phase)
	return ok && def.Terminal && def.Success
}
