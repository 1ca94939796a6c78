// Package combat resolves a single pirate encounter from dice rolls and stat
// tables. The resolver is pure apart from the injected randomness source.
package combat

import (
	"orebound/internal/random"
)

type Outcome string

const (
	OutcomePiratesDefeated Outcome = "pirates_defeated"
	OutcomePiratesWon      Outcome = "pirates_won"
	OutcomePayloadSeized   Outcome = "payload_seized"
)

// AmbiguousSeizureChance is the probability that an ambiguous engagement ends
// with the cargo seized rather than a lucky escape. The 80/20 split is
// inherited tuning with no documented rationale; keep it here, named, until
// design review settles it.
const AmbiguousSeizureChance = 0.80

const (
	// Unescorted ships fight with no attack rating but never drop below
	// minimum evasion.
	noSecurityAttack  = 0.0
	noSecurityDefense = 1.0

	relationshipBonusPerLevel = 0.5
	relationshipBonusCapLevel = 10
)

// SecurityRating is a hired escort's stat line from the catalog.
type SecurityRating struct {
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
}

type Result struct {
	Outcome       Outcome `json:"outcome"`
	PlayerAttack  float64 `json:"player_attack"`
	PlayerDefense float64 `json:"player_defense"`
	PirateAttack  float64 `json:"pirate_attack"`
	PirateDefense float64 `json:"pirate_defense"`
	SecurityHired bool    `json:"security_hired"`
	Narrative     string  `json:"narrative"`
}

// raider archetype stat ranges, indexed by player level band. Ranges widen
// with level: stronger players attract stronger crews.
type archetypeRange struct {
	minLevel   int
	attackMin  float64
	attackMax  float64
	defenseMin float64
	defenseMax float64
}

var archetypes = []archetypeRange{
	{minLevel: 9, attackMin: 5, attackMax: 15, defenseMin: 4, defenseMax: 13},
	{minLevel: 7, attackMin: 4, attackMax: 12, defenseMin: 3, defenseMax: 10},
	{minLevel: 5, attackMin: 3, attackMax: 9, defenseMin: 2, defenseMax: 8},
	{minLevel: 3, attackMin: 2, attackMax: 6, defenseMin: 2, defenseMax: 6},
	{minLevel: 0, attackMin: 1, attackMax: 4, defenseMin: 1, defenseMax: 4},
}

func archetypeFor(playerLevel int) archetypeRange {
	for _, a := range archetypes {
		if playerLevel >= a.minLevel {
			return a
		}
	}
	return archetypes[len(archetypes)-1]
}

type Resolver struct {
	Rand random.Source
}

// Resolve runs one encounter. security is nil when no escort was hired;
// relationshipLevel adds 0.5 per level (capped at 10) to both escort stats.
func (r Resolver) Resolve(playerLevel int, security *SecurityRating, relationshipLevel int) Result {
	attack, defense := noSecurityAttack, noSecurityDefense
	if security != nil {
		bonus := relationshipBonusPerLevel * float64(minInt(relationshipLevel, relationshipBonusCapLevel))
		attack = security.Attack + bonus
		defense = security.Defense + bonus
	}
	if defense < noSecurityDefense {
		defense = noSecurityDefense
	}

	arch := archetypeFor(playerLevel)
	pirateAttack := random.Between(r.Rand, arch.attackMin, arch.attackMax)
	pirateDefense := random.Between(r.Rand, arch.defenseMin, arch.defenseMax)

	res := Result{
		PlayerAttack:  attack + d20(r.Rand),
		PlayerDefense: defense + d20(r.Rand),
		PirateAttack:  pirateAttack + d20(r.Rand),
		PirateDefense: pirateDefense + d20(r.Rand),
		SecurityHired: security != nil,
	}

	switch {
	case res.PlayerAttack > res.PirateDefense && res.PlayerDefense > res.PirateAttack:
		res.Outcome = OutcomePiratesDefeated
	case res.PirateAttack > res.PlayerDefense && res.PirateDefense > res.PlayerAttack:
		res.Outcome = OutcomePiratesWon
	default:
		if r.Rand.Float64() < AmbiguousSeizureChance {
			res.Outcome = OutcomePayloadSeized
		} else {
			res.Outcome = OutcomePiratesDefeated
		}
	}
	res.Narrative = narrativeFor(res.Outcome, res.SecurityHired)
	return res
}

func d20(src random.Source) float64 {
	return float64(src.Intn(20) + 1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
