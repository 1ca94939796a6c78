package game

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"orebound/internal/domain/market"
	"orebound/internal/domain/mission"
	"orebound/internal/domain/news"
	"orebound/internal/random"
)

func testState() *State {
	epoch := time.Date(2049, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := NewState(epoch, 500000, 3, &random.Scripted{})
	s.SimDay = 42.5
	s.Player.MissionsCompleted = 2
	s.Player.PiratesDefeated = 1
	s.Player.Relationships["aegis"] = 4
	s.Depleted["bennu"] = true
	s.Missions = []mission.Mission{{
		ID:                "m-1",
		TargetID:          "ryugu",
		Resource:          market.Platinum,
		Phase:             mission.Outbound,
		PhaseStartDay:     40,
		PhaseDurationDays: 12,
		ExpectedTonnes:    18,
	}}
	s.Market.SetState(market.Gold, market.State{Price: 9000, LastUpdateDay: 42})
	s.Scheduler.RecordNewsShown(news.CategoryMarket, 42)
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	orig := testState()
	data, err := orig.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	restored := NewState(time.Time{}, 0, 0, &random.Scripted{})
	if err := restored.Restore(data); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.SimDay != orig.SimDay || !restored.Epoch.Equal(orig.Epoch) {
		t.Fatalf("clock lost: day=%v epoch=%v", restored.SimDay, restored.Epoch)
	}
	if restored.Player.Balance != 500000 || restored.Player.Relationships["aegis"] != 4 {
		t.Fatalf("player lost: %+v", restored.Player)
	}
	if len(restored.Missions) != 1 || restored.Missions[0].ID != "m-1" || restored.Missions[0].Phase != mission.Outbound {
		t.Fatalf("missions lost: %+v", restored.Missions)
	}
	if spot, _ := restored.Market.SpotPrice(market.Gold); spot != 9000 {
		t.Fatalf("market lost: gold=%v", spot)
	}
	if restored.Scheduler.CanShowNews(news.CategoryMarket, 42.5) {
		t.Fatal("scheduler cooldown lost")
	}
	if !restored.Depleted["bennu"] || restored.TargetAvailable("bennu") {
		t.Fatal("depleted set lost")
	}
}

func TestRestoreRejectsBadEnvelope(t *testing.T) {
	s := NewState(time.Time{}, 0, 0, &random.Scripted{})
	if err := s.Restore([]byte(`{nope`)); err == nil {
		t.Fatal("malformed envelope accepted")
	}
	if err := s.Restore([]byte(`{"version":7}`)); err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("wrong version accepted: %v", err)
	}
}

func TestRestorePartialFailureKeepsGoodSections(t *testing.T) {
	orig := testState()
	data, err := orig.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	// Corrupt only the market section.
	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	env["market"] = json.RawMessage(`{"unobtainium":{}}`)
	corrupted, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}

	restored := NewState(time.Time{}, 0, 0, &random.Scripted{})
	restoreErr := restored.Restore(corrupted)
	var sectioned *RestoreError
	if !errors.As(restoreErr, &sectioned) {
		t.Fatalf("expected RestoreError, got %v", restoreErr)
	}
	if len(sectioned.Sections) != 1 || sectioned.Sections[0] != "market" {
		t.Fatalf("failed sections: %v", sectioned.Sections)
	}

	// Good sections applied, the bad one kept its prior value.
	if restored.Player.Balance != 500000 || len(restored.Missions) != 1 {
		t.Fatalf("good sections not applied: %+v", restored.Player)
	}
	if spot, _ := restored.Market.SpotPrice(market.Gold); spot != 8600 {
		t.Fatalf("failed section should keep the prior market, gold=%v", spot)
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(time.Date(2049, time.January, 1, 0, 0, 0, 0, time.UTC), 100, 1, &random.Scripted{})
	if s.Version != 1 {
		t.Fatalf("version: got %d, want 1", s.Version)
	}
	if spot, _ := s.Market.SpotPrice(market.Water); spot != 5000 {
		t.Fatalf("market not at base: %v", spot)
	}
	if !s.TargetAvailable("anywhere") {
		t.Fatal("fresh state should have every target available")
	}
}

func TestDateAndFacts(t *testing.T) {
	s := testState()
	want := s.Epoch.Add(time.Duration(42.5 * 24 * float64(time.Hour)))
	if !s.Date().Equal(want) {
		t.Fatalf("date: got %v, want %v", s.Date(), want)
	}
	f := s.Facts()
	if f.Balance != 500000 || f.ActiveMissions != 1 || f.MissionsCompleted != 2 || f.PiratesDefeated != 1 {
		t.Fatalf("facts: %+v", f)
	}
}

func TestRemoveTerminalMissions(t *testing.T) {
	s := testState()
	s.Missions = []mission.Mission{
		{ID: "a", Phase: mission.Outbound},
		{ID: "b", Phase: mission.MissionSuccess},
		{ID: "c", Phase: mission.Drilling},
		{ID: "d", Phase: mission.PayloadSeized},
	}
	removed := s.RemoveTerminalMissions()
	if len(removed) != 2 || removed[0].ID != "b" || removed[1].ID != "d" {
		t.Fatalf("removed: %+v", removed)
	}
	if len(s.Missions) != 2 || s.Missions[0].ID != "a" || s.Missions[1].ID != "c" {
		t.Fatalf("kept: %+v", s.Missions)
	}
}
