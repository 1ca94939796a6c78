// Package mission holds the mission-phase state machine: a closed set of
// phases, a static transition table, and the reliability-weighted roll that
// moves a mission through it.
package mission

import "fmt"

type Phase int

const (
	ContractSigned Phase = iota
	Launch
	LaunchAnomaly
	Outbound
	InFlightAnomaly
	Drilling
	ExplosionAtDrillSite
	Inbound
	DeliveringPayload
	MissionSuccess
	PirateAttackOutbound
	PirateAttackInbound
	PiratesDefeated
	PiratesWon
	PayloadSeized

	phaseCount
)

var phaseNames = [phaseCount]string{
	ContractSigned:       "contract_signed",
	Launch:               "launch",
	LaunchAnomaly:        "launch_anomaly",
	Outbound:             "outbound",
	InFlightAnomaly:      "in_flight_anomaly",
	Drilling:             "drilling",
	ExplosionAtDrillSite: "explosion_at_drill_site",
	Inbound:              "inbound",
	DeliveringPayload:    "delivering_payload",
	MissionSuccess:       "mission_success",
	PirateAttackOutbound: "pirate_attack_outbound",
	PirateAttackInbound:  "pirate_attack_inbound",
	PiratesDefeated:      "pirates_defeated",
	PiratesWon:           "pirates_won",
	PayloadSeized:        "payload_seized",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// PhaseFromString maps the serialized name back to the enum. Unknown names
// report ok=false; callers treat that as a configuration error.
func PhaseFromString(s string) (Phase, bool) {
	for p, name := range phaseNames {
		if name == s {
			return Phase(p), true
		}
	}
	return 0, false
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	v, ok := PhaseFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown phase %q", text)
	}
	*p = v
	return nil
}

type Edge struct {
	Next Phase
	Prob float64
}

type PhaseDefinition struct {
	Terminal bool
	Success  bool
	// Combat marks phases whose outcome is decided by the combat resolver
	// rather than the transition roll. Edges still enumerate the reachable
	// outcomes so the table stays a complete picture of the graph.
	Combat bool
	Edges  []Edge
}

// Base transition probabilities. Anomaly edges are listed first so the
// cumulative walk gives them first claim on the draw.
var definitions = map[Phase]PhaseDefinition{
	ContractSigned: {Edges: []Edge{{Launch, 1.0}}},
	Launch: {Edges: []Edge{
		{LaunchAnomaly, 0.05},
		{Outbound, 0.95},
	}},
	LaunchAnomaly: {Terminal: true},
	Outbound: {Edges: []Edge{
		{InFlightAnomaly, 0.02},
		{Drilling, 0.98},
	}},
	InFlightAnomaly: {Terminal: true},
	Drilling: {Edges: []Edge{
		{ExplosionAtDrillSite, 0.03},
		{Inbound, 0.97},
	}},
	ExplosionAtDrillSite: {Terminal: true},
	Inbound: {Edges: []Edge{
		{InFlightAnomaly, 0.02},
		{DeliveringPayload, 0.98},
	}},
	DeliveringPayload: {Edges: []Edge{{MissionSuccess, 1.0}}},
	MissionSuccess:    {Terminal: true, Success: true},
	PirateAttackOutbound: {Combat: true, Edges: []Edge{
		{PiratesWon, 0.3},
		{PayloadSeized, 0.3},
		{PiratesDefeated, 0.4},
	}},
	PirateAttackInbound: {Combat: true, Edges: []Edge{
		{PiratesWon, 0.3},
		{PayloadSeized, 0.3},
		{PiratesDefeated, 0.4},
	}},
	// Outbound resume; inbound ambushes resume at DeliveringPayload, chosen
	// by the tick engine from the mission's recorded ambush leg.
	PiratesDefeated: {Edges: []Edge{{Drilling, 1.0}}},
	PiratesWon:      {Terminal: true},
	PayloadSeized:   {Terminal: true},
}

// Definition returns the static table entry for p. Unknown phases report
// ok=false and must be treated as no-ops by callers.
func Definition(p Phase) (PhaseDefinition, bool) {
	def, ok := definitions[p]
	return def, ok
}

// ValidateTable checks the structural invariants of the transition graph:
// every phase is defined, terminal phases have no outgoing edges, non-terminal
// phases have at least one, and every walk reaches a terminal phase (the
// graph is acyclic toward terminal states).
func ValidateTable() error {
	for p := Phase(0); p < phaseCount; p++ {
		def, ok := definitions[p]
		if !ok {
			return fmt.Errorf("phase %s: missing definition", p)
		}
		if def.Terminal && len(def.Edges) != 0 {
			return fmt.Errorf("phase %s: terminal with %d outgoing edges", p, len(def.Edges))
		}
		if !def.Terminal && len(def.Edges) == 0 {
			return fmt.Errorf("phase %s: non-terminal with no outgoing edges", p)
		}
		for _, e := range def.Edges {
			if e.Next < 0 || e.Next >= phaseCount {
				return fmt.Errorf("phase %s: edge to unknown phase %d", p, int(e.Next))
			}
			if e.Prob <= 0 || e.Prob > 1 {
				return fmt.Errorf("phase %s: edge to %s with probability %v", p, e.Next, e.Prob)
			}
		}
	}
	for p := Phase(0); p < phaseCount; p++ {
		if err := checkReachesTerminal(p, map[Phase]bool{}); err != nil {
			return err
		}
	}
	return nil
}

func checkReachesTerminal(p Phase, seen map[Phase]bool) error {
	if seen[p] {
		return fmt.Errorf("phase %s: cycle in transition table", p)
	}
	def := definitions[p]
	if def.Terminal {
		return nil
	}
	seen[p] = true
	defer delete(seen, p)
	for _, e := range def.Edges {
		if err := checkReachesTerminal(e.Next, seen); err != nil {
			return err
		}
	}
	return nil
}
