// Package game composes the simulation state the orchestrator owns: the
// simulated-day clock, player, active missions, market, and news scheduler.
package game

import (
	"time"

	"orebound/internal/domain/market"
	"orebound/internal/domain/mission"
	"orebound/internal/domain/news"
	"orebound/internal/domain/player"
	"orebound/internal/random"
)

const hoursPerSimDay = 24

type State struct {
	// SimDay is the monotonically increasing simulated-day counter every
	// duration and cooldown compares against. Never wall clock.
	SimDay float64

	// Epoch anchors SimDay to a calendar date for date-predicated content.
	Epoch time.Time

	Player player.Player

	// Missions in creation order; iteration order is part of the replay
	// contract.
	Missions []mission.Mission

	Market    *market.Market
	Scheduler *news.Scheduler

	// Targets exhausted by a completed drilling phase. Monotonic within a
	// session, like the scheduler's blocked set.
	Depleted map[string]bool

	Version int64
}

func NewState(epoch time.Time, startingBalance float64, level int, src random.Source) *State {
	return &State{
		Epoch:     epoch,
		Player:    player.Player{Balance: startingBalance, Level: level, Relationships: map[string]int{}},
		Market:    market.New(0),
		Scheduler: news.NewScheduler(src),
		Depleted:  map[string]bool{},
		Version:   1,
	}
}

// Date is the calendar date at the current sim day.
func (s *State) Date() time.Time {
	return s.Epoch.Add(time.Duration(s.SimDay * hoursPerSimDay * float64(time.Hour)))
}

// TargetAvailable reports whether a mining target can still be launched at:
// not depleted by us and not blocked by a competitor.
func (s *State) TargetAvailable(targetID string) bool {
	return !s.Depleted[targetID] && !s.Scheduler.IsBlocked(targetID)
}

// RemoveTerminalMissions drops finished missions, preserving creation order
// of the remainder, and returns the removed ones.
func (s *State) RemoveTerminalMissions() []mission.Mission {
	var removed []mission.Mission
	kept := s.Missions[:0]
	for _, m := range s.Missions {
		if m.Terminal() {
			removed = append(removed, m)
			continue
		}
		kept = append(kept, m)
	}
	s.Missions = kept
	return removed
}

// Facts assembles the read-only view the news scheduler predicates on.
func (s *State) Facts() news.Facts {
	return news.Facts{
		Date:              s.Date(),
		Balance:           s.Player.Balance,
		ActiveMissions:    len(s.Missions),
		MissionsCompleted: s.Player.MissionsCompleted,
		PiratesDefeated:   s.Player.PiratesDefeated,
	}
}
