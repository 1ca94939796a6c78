// Package market owns per-commodity price state. Prices evolve weekly by a
// bounded random walk and never rest outside [0.5x, 2x] of base.
package market

import (
	"encoding/json"
	"fmt"

	"orebound/internal/random"
)

type Commodity int

const (
	Water Commodity = iota
	Iron
	Nickel
	Cobalt
	Platinum
	Gold
	Helium3
	Silicates

	NumCommodities
)

var commodityNames = [NumCommodities]string{
	Water:     "water",
	Iron:      "iron",
	Nickel:    "nickel",
	Cobalt:    "cobalt",
	Platinum:  "platinum",
	Gold:      "gold",
	Helium3:   "helium3",
	Silicates: "silicates",
}

func (c Commodity) String() string {
	if c < 0 || c >= NumCommodities {
		return fmt.Sprintf("commodity(%d)", int(c))
	}
	return commodityNames[c]
}

func CommodityFromString(s string) (Commodity, bool) {
	for c, name := range commodityNames {
		if name == s {
			return Commodity(c), true
		}
	}
	return 0, false
}

func (c Commodity) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Commodity) UnmarshalText(text []byte) error {
	v, ok := CommodityFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown commodity %q", text)
	}
	*c = v
	return nil
}

type spec struct {
	basePrice  float64 // credits per tonne
	volatility float64 // max weekly move as a fraction of current price
}

var specs = [NumCommodities]spec{
	Water:     {basePrice: 5000, volatility: 0.40},
	Iron:      {basePrice: 1200, volatility: 0.15},
	Nickel:    {basePrice: 1800, volatility: 0.18},
	Cobalt:    {basePrice: 3400, volatility: 0.22},
	Platinum:  {basePrice: 9800, volatility: 0.30},
	Gold:      {basePrice: 8600, volatility: 0.28},
	Helium3:   {basePrice: 14500, volatility: 0.45},
	Silicates: {basePrice: 700, volatility: 0.12},
}

// BasePrice returns the equilibrium price the clamp band is anchored on.
func BasePrice(c Commodity) (float64, bool) {
	if c < 0 || c >= NumCommodities {
		return 0, false
	}
	return specs[c].basePrice, true
}

const (
	weekDays       = 7.0
	historyCap     = 52
	swingThreshold = 0.15

	priceFloorFactor = 0.5
	priceCeilFactor  = 2.0

	contractPremiumMin = 1.10
	contractPremiumMax = 1.25

	trendWindow    = 4
	trendThreshold = 0.10
)

type PricePoint struct {
	Day    float64 `json:"day"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

type State struct {
	Price         float64      `json:"price"`
	History       []PricePoint `json:"history,omitempty"`
	LastUpdateDay float64      `json:"last_update_day"`
}

type Market struct {
	states [NumCommodities]State
}

func New(startDay float64) *Market {
	m := &Market{}
	for c := Commodity(0); c < NumCommodities; c++ {
		m.states[c] = State{Price: specs[c].basePrice, LastUpdateDay: startDay}
	}
	return m
}

// Headline is a market-news fact produced by a large weekly swing. The news
// scheduler phrases and gates it; the market only reports it.
type Headline struct {
	Commodity Commodity
	Change    float64
	Text      string
}

// Update applies every elapsed whole week per commodity, one week at a time,
// and returns headlines for swings beyond the threshold. Each commodity keeps
// its own last-update day, advanced by exactly seven days per step.
func (m *Market) Update(now float64, src random.Source) []Headline {
	var headlines []Headline
	for c := Commodity(0); c < NumCommodities; c++ {
		st := &m.states[c]
		for now-st.LastUpdateDay >= weekDays {
			delta := random.Between(src, -specs[c].volatility, specs[c].volatility)
			old := st.Price
			next := clamp(old*(1+delta), specs[c].basePrice*priceFloorFactor, specs[c].basePrice*priceCeilFactor)
			change := (next - old) / old
			st.Price = next
			st.LastUpdateDay += weekDays
			st.History = append(st.History, PricePoint{Day: st.LastUpdateDay, Price: next, Change: change})
			if len(st.History) > historyCap {
				st.History = st.History[len(st.History)-historyCap:]
			}
			if change > swingThreshold || change < -swingThreshold {
				headlines = append(headlines, Headline{
					Commodity: c,
					Change:    change,
					Text:      headlineText(c, change, src),
				})
			}
		}
	}
	return headlines
}

// SpotPrice is the current price with no premium. No randomness.
func (m *Market) SpotPrice(c Commodity) (float64, bool) {
	if c < 0 || c >= NumCommodities {
		return 0, false
	}
	return m.states[c].Price, true
}

// DrawContractPremium samples the guaranteed-buyer markup. It is drawn once
// when a contract is created and stored on the mission, so repeated quotes for
// the same contract agree.
func DrawContractPremium(src random.Source) float64 {
	return random.Between(src, contractPremiumMin, contractPremiumMax)
}

// ContractPrice applies a previously drawn premium to the current spot price.
func (m *Market) ContractPrice(c Commodity, premium float64) (float64, bool) {
	spot, ok := m.SpotPrice(c)
	if !ok {
		return 0, false
	}
	return spot * premium, true
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PriceTrend compares the current price to the trailing-four-entry average.
func (m *Market) PriceTrend(c Commodity) Trend {
	if c < 0 || c >= NumCommodities {
		return TrendStable
	}
	st := m.states[c]
	n := len(st.History)
	if n == 0 {
		return TrendStable
	}
	window := trendWindow
	if n < window {
		window = n
	}
	sum := 0.0
	for _, p := range st.History[n-window:] {
		sum += p.Price
	}
	avg := sum / float64(window)
	switch {
	case st.Price > avg*(1+trendThreshold):
		return TrendUp
	case st.Price < avg*(1-trendThreshold):
		return TrendDown
	default:
		return TrendStable
	}
}

// StateOf exposes a copy of one commodity's state for observers and tests.
func (m *Market) StateOf(c Commodity) (State, bool) {
	if c < 0 || c >= NumCommodities {
		return State{}, false
	}
	st := m.states[c]
	st.History = append([]PricePoint(nil), st.History...)
	return st, true
}

// SetState overwrites one commodity's state. Used by snapshot restore and by
// scenario tests that need a forced starting point.
func (m *Market) SetState(c Commodity, st State) bool {
	if c < 0 || c >= NumCommodities {
		return false
	}
	m.states[c] = st
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MarshalJSON writes states keyed by commodity name so snapshots stay readable
// and stable across enum reordering.
func (m *Market) MarshalJSON() ([]byte, error) {
	out := make(map[string]State, NumCommodities)
	for c := Commodity(0); c < NumCommodities; c++ {
		out[c.String()] = m.states[c]
	}
	return json.Marshal(out)
}

func (m *Market) UnmarshalJSON(data []byte) error {
	var raw map[string]State
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, st := range raw {
		c, ok := CommodityFromString(name)
		if !ok {
			return fmt.Errorf("market snapshot: unknown commodity %q", name)
		}
		m.states[c] = st
	}
	return nil
}
