// Package launch is the mission-launch decision: validate the order against
// player funds and target availability, then create the mission.
package launch

import (
	"context"
	"errors"
	"strings"

	"orebound/internal/app/ports"
	"orebound/internal/domain/mission"

	"orebound/internal/domain/market"
	"orebound/internal/random"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid launch request")

// Reasons for a rejected launch. These are expected user conditions, returned
// as structured results rather than errors.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonTargetBlocked     = "target_blocked"
	ReasonTargetDepleted    = "target_depleted"
)

type UseCase struct {
	States  ports.GameStateRepository
	Catalog ports.CatalogProvider
	Metrics ports.SimMetrics
	Rand    random.Source
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" || req.TargetID == "" || req.ProviderID == "" || req.CrewID == "" {
		return Response{}, ErrInvalidRequest
	}

	// Unknown catalog ids are integration bugs, not player mistakes.
	target, ok := u.Catalog.TargetByID(req.TargetID)
	if !ok {
		return Response{}, ErrInvalidRequest
	}
	provider, ok := u.Catalog.ProviderByID(req.ProviderID)
	if !ok {
		return Response{}, ErrInvalidRequest
	}
	crew, ok := u.Catalog.CrewByID(req.CrewID)
	if !ok {
		return Response{}, ErrInvalidRequest
	}
	cost := provider.Cost + crew.Cost
	var securityID string
	if req.SecurityID != "" {
		firm, ok := u.Catalog.SecurityByID(req.SecurityID)
		if !ok {
			return Response{}, ErrInvalidRequest
		}
		securityID = firm.ID
		cost += firm.Cost
	}

	state, err := u.States.Load(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}

	if state.Scheduler.IsBlocked(target.ID) {
		return Response{Rejected: ReasonTargetBlocked}, nil
	}
	if state.Depleted[target.ID] {
		return Response{Rejected: ReasonTargetDepleted}, nil
	}
	if err := state.Player.Debit(cost); err != nil {
		return Response{Rejected: ReasonInsufficientFunds}, nil
	}

	roller := mission.Roller{Rand: u.Rand}
	m := mission.Mission{
		ID:                  uuid.NewString(),
		TargetID:            target.ID,
		Resource:            target.Resource,
		Phase:               mission.ContractSigned,
		PhaseStartDay:       state.SimDay,
		ProviderReliability: clamp01(provider.Reliability + state.Player.ReliabilityBonus),
		CrewReliability:     clamp01(crew.Reliability + state.Player.ReliabilityBonus),
		Contract:            req.Contract,
		AccumulatedCost:     cost,
		ExpectedTonnes:      target.YieldTonnes * crew.Efficiency,
		SecurityID:          securityID,
		CreatedDay:          state.SimDay,
	}
	m.PhaseDurationDays = roller.PhaseDuration(mission.ContractSigned, legsOf(target), provider.CadenceDays)
	if req.Contract {
		// Drawn once here; every later quote for this contract agrees.
		m.ContractPremium = market.DrawContractPremium(u.Rand)
	}
	state.Missions = append(state.Missions, m)

	expected := state.Version
	state.Version++
	if err := u.States.SaveWithVersion(ctx, req.GameID, state, expected); err != nil {
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordLaunch()
	}
	return Response{Accepted: true, Mission: m, Balance: state.Player.Balance}, nil
}

func legsOf(t ports.MiningTarget) mission.TripLegs {
	return mission.TripLegs{
		OutboundDays: t.OutboundDays,
		MiningDays:   t.MiningDays,
		ReturnDays:   t.ReturnDays,
	}
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
