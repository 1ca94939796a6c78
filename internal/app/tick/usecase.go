// Package tick is the orchestrator: one Execute call advances the simulated
// clock and runs the whole cadence for the elapsed span. Ordering within a
// tick is part of the contract: market weekly updates first, so missions
// completing this tick are paid at the post-update price; then missions in
// creation order; then news emission.
package tick

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"orebound/internal/app/ports"
	"orebound/internal/domain/combat"
	"orebound/internal/domain/game"
	"orebound/internal/domain/market"
	"orebound/internal/domain/mission"
	"orebound/internal/domain/news"
	"orebound/internal/random"
)

var ErrInvalidRequest = errors.New("invalid tick request")

type UseCase struct {
	TxManager ports.TxManager
	States    ports.GameStateRepository
	NewsLog   ports.NewsLogRepository
	Catalog   ports.CatalogProvider
	Metrics   ports.SimMetrics
	Rand      random.Source
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" || req.Days <= 0 {
		return Response{}, ErrInvalidRequest
	}

	run := func(ctx context.Context) (Response, error) {
		state, err := u.States.Load(ctx, req.GameID)
		if err != nil {
			return Response{}, err
		}

		state.SimDay += req.Days
		now := state.SimDay

		headlines := state.Market.Update(now, u.Rand)

		var items []news.NewsItem
		for i := range state.Missions {
			items = append(items, u.advanceMission(state, &state.Missions[i], now)...)
		}
		completed := state.RemoveTerminalMissions()

		items = append(items, u.emitScheduled(state, headlines, now)...)

		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Priority > items[j].Priority
		})
		for _, item := range items {
			if u.Metrics != nil {
				u.Metrics.RecordNews(item.Category)
			}
		}

		if len(items) > 0 && u.NewsLog != nil {
			if err := u.NewsLog.Append(ctx, req.GameID, items); err != nil {
				return Response{}, err
			}
		}
		expected := state.Version
		state.Version++
		if err := u.States.SaveWithVersion(ctx, req.GameID, state, expected); err != nil {
			return Response{}, err
		}
		return Response{
			SimDay:    state.SimDay,
			Balance:   state.Player.Balance,
			News:      items,
			Completed: completed,
		}, nil
	}

	if u.TxManager == nil {
		return run(ctx)
	}
	var resp Response
	err := u.TxManager.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		resp, err = run(ctx)
		return err
	})
	return resp, err
}

// advanceMission walks one mission through every phase boundary the elapsed
// time crossed. Combat resolution and its consequences are folded into the
// same transition, so the mission is never observable mid-change.
func (u UseCase) advanceMission(state *game.State, m *mission.Mission, now float64) []news.NewsItem {
	roller := mission.Roller{Rand: u.Rand}
	var items []news.NewsItem

	for !m.Terminal() && m.PhaseComplete(now) {
		boundary := m.PhaseStartDay + m.PhaseDurationDays
		def, ok := mission.Definition(m.Phase)
		if !ok {
			return items
		}

		var next mission.Phase
		switch {
		case def.Combat:
			next = u.resolveAmbush(state, m, boundary, &items)
		case m.Phase == mission.PiratesDefeated:
			next = mission.ResumePhase(m.Ambush)
		default:
			next = roller.RollNextPhase(m.Phase, m.ProviderReliability, m.CrewReliability)
			if ambush, ok := mission.AmbushPhase(m.Phase); ok && isNaturalProgress(m.Phase, next) {
				if roller.CheckPirateAttack(m.Phase, state.Player.Level) {
					next = ambush
					if m.Phase == mission.Outbound {
						m.Ambush = mission.AmbushOutbound
					} else {
						m.Ambush = mission.AmbushInbound
					}
				}
			}
		}

		u.enterPhase(state, m, next, boundary, roller)

		if m.Terminal() {
			items = append(items, u.settleTerminal(state, m, boundary)...)
		}
	}
	return items
}

// isNaturalProgress reports the two transitions pirate injection may hijack.
func isNaturalProgress(from, to mission.Phase) bool {
	return (from == mission.Outbound && to == mission.Drilling) ||
		(from == mission.Inbound && to == mission.DeliveringPayload)
}

func (u UseCase) resolveAmbush(state *game.State, m *mission.Mission, boundary float64, items *[]news.NewsItem) mission.Phase {
	resolver := combat.Resolver{Rand: u.Rand}
	var rating *combat.SecurityRating
	relationship := 0
	if m.SecurityID != "" {
		if firm, ok := u.Catalog.SecurityByID(m.SecurityID); ok {
			r := firm.Rating
			rating = &r
			relationship = state.Player.RelationshipLevel(m.SecurityID)
		}
	}
	result := resolver.Resolve(state.Player.Level, rating, relationship)
	m.Combat = &result
	if u.Metrics != nil {
		u.Metrics.RecordCombat(result.Outcome)
	}

	switch result.Outcome {
	case combat.OutcomePiratesDefeated:
		state.Player.PiratesDefeated++
		if state.Scheduler.CanShowNews(news.CategoryImportant, boundary) {
			state.Scheduler.RecordNewsShown(news.CategoryImportant, boundary)
			*items = append(*items, news.Item(news.CategoryImportant, boundary, result.Narrative))
		}
		return mission.PiratesDefeated
	case combat.OutcomePiratesWon:
		return mission.PiratesWon
	default:
		return mission.PayloadSeized
	}
}

// enterPhase moves the mission to next at the phase boundary, rolls the new
// duration, and applies entry side effects (target depletion, payload state).
func (u UseCase) enterPhase(state *game.State, m *mission.Mission, next mission.Phase, boundary float64, roller mission.Roller) {
	m.Phase = next
	m.PhaseStartDay = boundary

	legs := mission.TripLegs{}
	cadence := 0.0
	if target, ok := u.Catalog.TargetByID(m.TargetID); ok {
		legs = mission.TripLegs{
			OutboundDays: target.OutboundDays,
			MiningDays:   target.MiningDays,
			ReturnDays:   target.ReturnDays,
		}
	}
	m.PhaseDurationDays = roller.PhaseDuration(next, legs, cadence)

	switch next {
	case mission.Drilling:
		// First drill bite exhausts the target for everyone else.
		if !state.Depleted[m.TargetID] {
			state.Depleted[m.TargetID] = true
		}
		m.ActualTonnes = m.ExpectedTonnes
	case mission.PayloadSeized, mission.PiratesWon:
		m.ActualTonnes = 0
	}
}

// settleTerminal pays out a successful mission at the current (post-update)
// spot or contract price and phrases the outcome. Failures forfeit sunk cost.
func (u UseCase) settleTerminal(state *game.State, m *mission.Mission, boundary float64) []news.NewsItem {
	if u.Metrics != nil {
		u.Metrics.RecordTerminal(m.Phase)
	}

	var items []news.NewsItem
	emit := func(category news.Category, text string) {
		if !state.Scheduler.CanShowNews(category, boundary) {
			return
		}
		state.Scheduler.RecordNewsShown(category, boundary)
		items = append(items, news.Item(category, boundary, text))
	}

	if m.Succeeded() {
		price, _ := state.Market.SpotPrice(m.Resource)
		if m.Contract {
			price, _ = state.Market.ContractPrice(m.Resource, m.ContractPremium)
		}
		revenue := m.ActualTonnes * price
		state.Player.Credit(revenue)
		state.Player.MissionsCompleted++
		emit(news.CategoryImportant, fmt.Sprintf(
			"Delivery confirmed: %.0f tonnes of %s from %s sold for %.0f credits.",
			m.ActualTonnes, m.Resource, m.TargetID, revenue))
		return items
	}

	switch m.Phase {
	case mission.LaunchAnomaly:
		emit(news.CategoryCritical, fmt.Sprintf("Launch anomaly: the %s mission was lost seconds after liftoff.", m.TargetID))
	case mission.InFlightAnomaly:
		emit(news.CategoryCritical, fmt.Sprintf("Contact lost with the %s mission. Recovery teams report debris on the transfer orbit.", m.TargetID))
	case mission.ExplosionAtDrillSite:
		emit(news.CategoryCritical, fmt.Sprintf("Explosion at the %s drill site. The rig and crew quarters are gone.", m.TargetID))
	case mission.PiratesWon:
		text := fmt.Sprintf("Pirates overran the %s mission.", m.TargetID)
		if m.Combat != nil {
			text = m.Combat.Narrative
		}
		emit(news.CategoryCritical, text)
	case mission.PayloadSeized:
		text := fmt.Sprintf("The %s payload was seized by pirates; the crew is safe.", m.TargetID)
		if m.Combat != nil {
			text = m.Combat.Narrative
		}
		emit(news.CategoryCritical, text)
	}
	return items
}

// emitScheduled runs the cooldown-gated categories: market headline, easter
// eggs, competitor action, educational and flavor filler.
func (u UseCase) emitScheduled(state *game.State, headlines []market.Headline, now float64) []news.NewsItem {
	var items []news.NewsItem
	s := state.Scheduler

	if len(headlines) > 0 && s.CanShowNews(news.CategoryMarket, now) {
		if item, ok := s.MarketNews(headlines, now); ok {
			s.RecordNewsShown(news.CategoryMarket, now)
			items = append(items, item)
		}
	}

	items = append(items, s.CheckEasterEggs(state.Facts(), now)...)

	if s.CanShowNews(news.CategoryCompetitor, now) {
		if item, ok := s.CompetitorNews(now, u.Catalog.Competitors(), u.eligibleTargets(state)); ok {
			s.RecordNewsShown(news.CategoryCompetitor, now)
			items = append(items, item)
		}
	}

	if s.CanShowNews(news.CategoryEducational, now) {
		s.RecordNewsShown(news.CategoryEducational, now)
		items = append(items, s.EducationalNews(now))
	}
	if s.CanShowNews(news.CategoryFlavor, now) {
		s.RecordNewsShown(news.CategoryFlavor, now)
		items = append(items, s.FlavorNews(now))
	}
	return items
}

func (u UseCase) eligibleTargets(state *game.State) []string {
	var out []string
	for _, t := range u.Catalog.Targets() {
		if state.TargetAvailable(t.ID) {
			out = append(out, t.ID)
		}
	}
	return out
}
