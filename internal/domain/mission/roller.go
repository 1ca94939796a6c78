package mission

import "orebound/internal/random"

const (
	// Floor below which no anomaly probability is ever adjusted. Even a
	// perfect provider and crew leave a sliver of risk.
	anomalyFloor = 0.001

	pirateMinPlayerLevel = 3
	pirateChanceOutbound = 0.05
	pirateChanceInbound  = 0.25
	reliabilityNeutral   = 0.5
)

// Phase duration tuning, in simulated days.
const (
	contractSigningCadenceMin = 0.5
	contractSigningCadenceMax = 1.5
	launchPrepDaysMin         = 1.0
	launchPrepDaysMax         = 3.0
	deliveryDaysMin           = 2.0
	deliveryDaysMax           = 5.0
	combatDaysMin             = 1.0
	combatDaysMax             = 2.0
)

// Roller runs the stochastic parts of the phase machine against an injected
// randomness source.
type Roller struct {
	Rand random.Source
}

// RollNextPhase picks the next phase from the transition table, weighted by
// provider and crew reliability. Terminal and unknown phases return the input
// unchanged. Reliabilities outside [0,1] are clamped.
//
// Anomaly edges (terminal, non-success next phases) scale down with the
// reliability modifier but never below the floor; the remaining edges absorb
// what the anomalies gave up.
func (r Roller) RollNextPhase(p Phase, providerReliability, crewReliability float64) Phase {
	def, ok := Definition(p)
	if !ok || def.Terminal {
		return p
	}

	mod := (clamp01(providerReliability) + clamp01(crewReliability)) / 2

	anomalyShift := 0.0
	for _, e := range def.Edges {
		if isAnomaly(e.Next) {
			anomalyShift += e.Prob * (mod - reliabilityNeutral)
		}
	}

	draw := r.Rand.Float64()
	cumulative := 0.0
	for _, e := range def.Edges {
		adjusted := e.Prob
		if isAnomaly(e.Next) {
			adjusted = e.Prob * (1 - mod + reliabilityNeutral)
			if adjusted < anomalyFloor {
				adjusted = anomalyFloor
			}
		} else {
			adjusted = e.Prob + anomalyShift
			if adjusted > 1 {
				adjusted = 1
			}
		}
		cumulative += adjusted
		if draw < cumulative {
			return e.Next
		}
	}
	// Rounding left the draw uncovered; take the first candidate.
	return def.Edges[0].Next
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isAnomaly(p Phase) bool {
	def, ok := Definition(p)
	return ok && def.Terminal && !def.Success
}

// CheckPirateAttack draws the independent ambush chance for a leg transition.
// Only players at level three or above attract ambushes; the inbound leg,
// with a full cargo hold, is far more tempting.
func (r Roller) CheckPirateAttack(p Phase, playerLevel int) bool {
	if playerLevel < pirateMinPlayerLevel {
		return false
	}
	switch p {
	case Outbound:
		return r.Rand.Float64() < pirateChanceOutbound
	case Inbound:
		return r.Rand.Float64() < pirateChanceInbound
	default:
		return false
	}
}

// AmbushPhase maps a travel leg to its pirate-attack phase.
func AmbushPhase(p Phase) (Phase, bool) {
	switch p {
	case Outbound:
		return PirateAttackOutbound, true
	case Inbound:
		return PirateAttackInbound, true
	default:
		return 0, false
	}
}

// ResumePhase is where a mission continues after the pirates are driven off.
func ResumePhase(leg AmbushLeg) Phase {
	if leg == AmbushInbound {
		return DeliveringPayload
	}
	return Drilling
}

// TripLegs carries the per-target travel and mining durations supplied by the
// catalog.
type TripLegs struct {
	OutboundDays float64
	MiningDays   float64
	ReturnDays   float64
}

// PhaseDuration returns the simulated-day length of a phase. Terminal phases
// take zero time; travel legs pass through the catalog durations; the rest
// draw bounded random spans, cadence-scaled for contract signing.
func (r Roller) PhaseDuration(p Phase, legs TripLegs, launchCadenceDays float64) float64 {
	def, ok := Definition(p)
	if !ok || def.Terminal {
		return 0
	}
	switch p {
	case ContractSigned:
		return random.Between(r.Rand, contractSigningCadenceMin, contractSigningCadenceMax) * launchCadenceDays
	case Launch:
		return random.Between(r.Rand, launchPrepDaysMin, launchPrepDaysMax)
	case Outbound:
		return legs.OutboundDays
	case Drilling:
		return legs.MiningDays
	case Inbound:
		return legs.ReturnDays
	case DeliveringPayload:
		return random.Between(r.Rand, deliveryDaysMin, deliveryDaysMax)
	case PirateAttackOutbound, PirateAttackInbound, PiratesDefeated:
		return random.Between(r.Rand, combatDaysMin, combatDaysMax)
	default:
		return 0
	}
}
