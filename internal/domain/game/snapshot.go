package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"orebound/internal/domain/market"
	"orebound/internal/domain/mission"
	"orebound/internal/domain/player"
)

// SnapshotVersion is bumped whenever the wire layout changes incompatibly.
const SnapshotVersion = 1

// snapshotEnvelope keeps each section as raw JSON so restore can decode them
// independently: a corrupt section is reported without losing the others.
type snapshotEnvelope struct {
	Version   int             `json:"version"`
	SimDay    float64         `json:"sim_day"`
	Epoch     time.Time       `json:"epoch"`
	Player    json.RawMessage `json:"player"`
	Missions  json.RawMessage `json:"missions"`
	Market    json.RawMessage `json:"market"`
	Scheduler json.RawMessage `json:"scheduler"`
	Depleted  []string        `json:"depleted_targets"`
}

// Snapshot renders the full serializable state: market, scheduler, missions,
// player, clock. No behavior, only data.
func (s *State) Snapshot() ([]byte, error) {
	playerRaw, err := json.Marshal(s.Player)
	if err != nil {
		return nil, fmt.Errorf("snapshot player: %w", err)
	}
	missionsRaw, err := json.Marshal(s.Missions)
	if err != nil {
		return nil, fmt.Errorf("snapshot missions: %w", err)
	}
	marketRaw, err := json.Marshal(s.Market)
	if err != nil {
		return nil, fmt.Errorf("snapshot market: %w", err)
	}
	schedulerRaw, err := s.Scheduler.Serialize()
	if err != nil {
		return nil, fmt.Errorf("snapshot scheduler: %w", err)
	}
	depleted := make([]string, 0, len(s.Depleted))
	for id := range s.Depleted {
		depleted = append(depleted, id)
	}
	return json.Marshal(snapshotEnvelope{
		Version:   SnapshotVersion,
		SimDay:    s.SimDay,
		Epoch:     s.Epoch,
		Player:    playerRaw,
		Missions:  missionsRaw,
		Market:    marketRaw,
		Scheduler: schedulerRaw,
		Depleted:  depleted,
	})
}

// RestoreError reports which snapshot sections failed to decode. Sections
// that did decode have been applied; a failed section keeps its previous
// in-memory value, never a half-decoded one.
type RestoreError struct {
	Sections []string
	Errs     []error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("snapshot restore failed for sections %v", e.Sections)
}

func (e *RestoreError) Unwrap() error {
	return errors.Join(e.Errs...)
}

// Restore loads a snapshot produced by Snapshot. The envelope itself must
// decode and carry a supported version; after that, each section is restored
// independently and failures are collected into a RestoreError.
func (s *State) Restore(data []byte) error {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("snapshot envelope: %w", err)
	}
	if env.Version != SnapshotVersion {
		return fmt.Errorf("snapshot version %d unsupported (want %d)", env.Version, SnapshotVersion)
	}

	s.SimDay = env.SimDay
	s.Epoch = env.Epoch
	s.Depleted = map[string]bool{}
	for _, id := range env.Depleted {
		s.Depleted[id] = true
	}

	var failed RestoreError
	fail := func(section string, err error) {
		failed.Sections = append(failed.Sections, section)
		failed.Errs = append(failed.Errs, err)
	}

	var p player.Player
	if err := json.Unmarshal(env.Player, &p); err != nil {
		fail("player", err)
	} else {
		s.Player = p
	}

	var missions []mission.Mission
	if err := json.Unmarshal(env.Missions, &missions); err != nil {
		fail("missions", err)
	} else {
		s.Missions = missions
	}

	restored := market.New(0)
	if err := json.Unmarshal(env.Market, restored); err != nil {
		fail("market", err)
	} else {
		s.Market = restored
	}

	if err := s.Scheduler.Deserialize(env.Scheduler); err != nil {
		fail("scheduler", err)
	}

	if len(failed.Sections) > 0 {
		return &failed
	}
	return nil
}
