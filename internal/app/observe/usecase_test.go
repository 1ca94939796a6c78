package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	"orebound/internal/app/ports"
	"orebound/internal/domain/game"
	"orebound/internal/domain/market"
	"orebound/internal/domain/mission"
	"orebound/internal/random"
)

type fakeStates struct{ state *game.State }

func (f fakeStates) Load(ctx context.Context, gameID string) (*game.State, error) {
	if f.state == nil {
		return nil, ports.ErrNotFound
	}
	return f.state, nil
}

func (f fakeStates) SaveWithVersion(ctx context.Context, gameID string, state *game.State, expectedVersion int64) error {
	return nil
}

type fakeCatalog struct{}

func (fakeCatalog) Targets() []ports.MiningTarget {
	return []ports.MiningTarget{
		{ID: "ryugu", Resource: market.Water},
		{ID: "bennu", Resource: market.Gold},
		{ID: "nereus", Resource: market.Iron},
	}
}

func (fakeCatalog) TargetByID(id string) (ports.MiningTarget, bool) {
	return ports.MiningTarget{}, false
}

func (fakeCatalog) ProviderByID(id string) (ports.LaunchProvider, bool) {
	return ports.LaunchProvider{}, false
}

func (fakeCatalog) CrewByID(id string) (ports.CrewType, bool) { return ports.CrewType{}, false }

func (fakeCatalog) SecurityByID(id string) (ports.SecurityFirm, bool) {
	return ports.SecurityFirm{}, false
}

func (fakeCatalog) Competitors() []string { return nil }

func TestObserveView(t *testing.T) {
	epoch := time.Date(2049, time.January, 1, 0, 0, 0, 0, time.UTC)
	state := game.NewState(epoch, 250000, 4, &random.Scripted{})
	state.SimDay = 3
	state.Depleted["nereus"] = true
	if err := state.Scheduler.Deserialize([]byte(`{"version":1,"blocked_targets":["bennu"]}`)); err != nil {
		t.Fatalf("seed blocked target: %v", err)
	}
	state.Missions = []mission.Mission{{ID: "m-1", TargetID: "ryugu", Phase: mission.Outbound}}
	state.Market.SetState(market.Water, market.State{Price: 7500})

	uc := UseCase{States: fakeStates{state: state}, Catalog: fakeCatalog{}}
	resp, err := uc.Execute(context.Background(), Request{GameID: "g"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if resp.SimDay != 3 || resp.Balance != 250000 || resp.Level != 4 {
		t.Fatalf("header: %+v", resp)
	}
	if !resp.Date.Equal(epoch.Add(72 * time.Hour)) {
		t.Fatalf("date: %v", resp.Date)
	}
	if len(resp.Missions) != 1 || resp.Missions[0].ID != "m-1" {
		t.Fatalf("missions: %+v", resp.Missions)
	}

	if len(resp.Market) != int(market.NumCommodities) {
		t.Fatalf("market rows: %d", len(resp.Market))
	}
	if resp.Market[0].Resource != "water" || resp.Market[0].SpotPrice != 7500 || resp.Market[0].BasePrice != 5000 {
		t.Fatalf("water row: %+v", resp.Market[0])
	}

	if len(resp.AvailableTargets) != 1 || resp.AvailableTargets[0] != "ryugu" {
		t.Fatalf("available: %v", resp.AvailableTargets)
	}
	if len(resp.BlockedTargets) != 1 || resp.BlockedTargets[0] != "bennu" {
		t.Fatalf("blocked: %v", resp.BlockedTargets)
	}
	if len(resp.DepletedTargets) != 1 || resp.DepletedTargets[0] != "nereus" {
		t.Fatalf("depleted: %v", resp.DepletedTargets)
	}
}

func TestObserveErrors(t *testing.T) {
	uc := UseCase{States: fakeStates{}, Catalog: fakeCatalog{}}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("empty game id: %v", err)
	}
	if _, err := uc.Execute(context.Background(), Request{GameID: "missing"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("missing game: %v", err)
	}
}
