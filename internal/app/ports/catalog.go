package ports

import (
	"orebound/internal/domain/combat"
	"orebound/internal/domain/market"
)

// MiningTarget is a static catalog entry for a mineable body.
type MiningTarget struct {
	ID         string
	Name       string
	DiameterM  float64
	TaxClass   string // taxonomic class: C, S, M, ...
	DistanceAU float64

	Resource    market.Commodity
	YieldTonnes float64

	OutboundDays float64
	MiningDays   float64
	ReturnDays   float64
}

type LaunchProvider struct {
	ID          string
	Name        string
	Cost        float64
	Reliability float64 // in [0,1]
	CadenceDays float64 // typical gap between launch windows
}

type CrewType struct {
	ID          string
	Name        string
	Cost        float64
	Efficiency  float64 // payload multiplier
	Reliability float64 // in [0,1]
}

type SecurityFirm struct {
	ID     string
	Name   string
	Cost   float64
	Rating combat.SecurityRating
}

// CatalogProvider serves the static configuration tables the simulation
// consumes. Implementations are read-only.
type CatalogProvider interface {
	Targets() []MiningTarget
	TargetByID(id string) (MiningTarget, bool)
	ProviderByID(id string) (LaunchProvider, bool)
	CrewByID(id string) (CrewType, bool)
	SecurityByID(id string) (SecurityFirm, bool)
	Competitors() []string
}
