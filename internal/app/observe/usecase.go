// Package observe is the read side: a flat view of the player, missions,
// market and scheduler for display layers. It mutates nothing.
package observe

import (
	"context"
	"errors"
	"strings"

	"orebound/internal/app/ports"
	"orebound/internal/domain/market"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type UseCase struct {
	States  ports.GameStateRepository
	Catalog ports.CatalogProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.States.Load(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		SimDay:         state.SimDay,
		Date:           state.Date(),
		Balance:        state.Player.Balance,
		Level:          state.Player.Level,
		Missions:       state.Missions,
		BlockedTargets: state.Scheduler.BlockedTargets(),
	}
	for id := range state.Depleted {
		resp.DepletedTargets = append(resp.DepletedTargets, id)
	}
	for c := market.Commodity(0); c < market.NumCommodities; c++ {
		spot, _ := state.Market.SpotPrice(c)
		base, _ := market.BasePrice(c)
		resp.Market = append(resp.Market, CommodityView{
			Resource:  c.String(),
			SpotPrice: spot,
			BasePrice: base,
			Trend:     string(state.Market.PriceTrend(c)),
		})
	}
	for _, t := range u.Catalog.Targets() {
		if state.TargetAvailable(t.ID) {
			resp.AvailableTargets = append(resp.AvailableTargets, t.ID)
		}
	}
	return resp, nil
}
