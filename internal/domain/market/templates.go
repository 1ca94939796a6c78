package market

import (
	"fmt"
	"math"

	"orebound/internal/random"
)

var upTemplates = [NumCommodities][]string{
	Water: {
		"Orbital depots report a supply squeeze: water up %s this week.",
		"Thirsty stations bid water prices up %s.",
	},
	Iron: {
		"Shipyard expansion pushes iron up %s.",
		"Structural steel demand lifts iron %s.",
	},
	Nickel: {
		"Hull-plate orders drive nickel up %s.",
		"Nickel climbs %s on alloy demand.",
	},
	Cobalt: {
		"Battery consortiums push cobalt up %s.",
		"Cobalt spikes %s as cell production ramps.",
	},
	Platinum: {
		"Catalyst shortage sends platinum up %s.",
		"Platinum rallies %s on refinery backlogs.",
	},
	Gold: {
		"Flight to hard assets lifts gold %s.",
		"Gold gains %s as markets wobble.",
	},
	Helium3: {
		"Fusion plants bid helium-3 up %s.",
		"Helium-3 jumps %s on reactor demand.",
	},
	Silicates: {
		"Habitat construction lifts silicates %s.",
		"Silicates up %s as printing feedstock runs short.",
	},
}

var downTemplates = [NumCommodities][]string{
	Water: {
		"Ice-hauler glut sinks water %s.",
		"Water slides %s after a record delivery quarter.",
	},
	Iron: {
		"Scrap recycling floods the market: iron down %s.",
		"Iron drops %s on slowing yard orders.",
	},
	Nickel: {
		"Nickel slips %s as alloy mills idle.",
		"Oversupply drags nickel down %s.",
	},
	Cobalt: {
		"Battery chemistry shift cuts cobalt %s.",
		"Cobalt falls %s on substitute cathodes.",
	},
	Platinum: {
		"Platinum sheds %s as catalysts are recycled.",
		"Platinum down %s on soft industrial demand.",
	},
	Gold: {
		"Gold eases %s as nerves settle.",
		"Profit-taking trims gold %s.",
	},
	Helium3: {
		"Reactor downtime drops helium-3 %s.",
		"Helium-3 falls %s on stockpile releases.",
	},
	Silicates: {
		"Silicates down %s as construction slows.",
		"Cheap regolith processing cuts silicates %s.",
	},
}

func headlineText(c Commodity, change float64, src random.Source) string {
	pool := upTemplates[c]
	if change < 0 {
		pool = downTemplates[c]
	}
	tpl := pool[src.Intn(len(pool))]
	return fmt.Sprintf(tpl, fmt.Sprintf("%.0f%%", math.Abs(change)*100))
}
