package staticcatalog

// defaultCatalog is the stock content compiled into the binary. A YAML file
// passed to Load replaces it wholesale.
var defaultCatalog = catalogYAML{
	Targets: []targetYAML{
		{ID: "2011-uw158", Name: "2011 UW158", DiameterM: 300, TaxClass: "X", DistanceAU: 0.04, Resource: "platinum", YieldTonnes: 90, OutboundDays: 40, MiningDays: 21, ReturnDays: 38},
		{ID: "ryugu", Name: "162173 Ryugu", DiameterM: 900, TaxClass: "C", DistanceAU: 0.07, Resource: "water", YieldTonnes: 420, OutboundDays: 55, MiningDays: 30, ReturnDays: 52},
		{ID: "bennu", Name: "101955 Bennu", DiameterM: 490, TaxClass: "B", DistanceAU: 0.05, Resource: "water", YieldTonnes: 260, OutboundDays: 48, MiningDays: 25, ReturnDays: 45},
		{ID: "psyche-fragment", Name: "Psyche Fragment K-7", DiameterM: 180, TaxClass: "M", DistanceAU: 0.19, Resource: "nickel", YieldTonnes: 150, OutboundDays: 80, MiningDays: 18, ReturnDays: 78},
		{ID: "nereus", Name: "4660 Nereus", DiameterM: 330, TaxClass: "E", DistanceAU: 0.03, Resource: "cobalt", YieldTonnes: 110, OutboundDays: 35, MiningDays: 20, ReturnDays: 33},
		{ID: "anteros", Name: "1943 Anteros", DiameterM: 2300, TaxClass: "L", DistanceAU: 0.06, Resource: "gold", YieldTonnes: 70, OutboundDays: 50, MiningDays: 28, ReturnDays: 47},
		{ID: "didymos-b", Name: "Didymos B", DiameterM: 160, TaxClass: "S", DistanceAU: 0.05, Resource: "silicates", YieldTonnes: 500, OutboundDays: 42, MiningDays: 22, ReturnDays: 40},
		{ID: "moon-rille-12", Name: "Lunar Rille Site 12", DiameterM: 0, TaxClass: "regolith", DistanceAU: 0.0026, Resource: "helium3", YieldTonnes: 12, OutboundDays: 4, MiningDays: 45, ReturnDays: 4},
	},
	Providers: []providerYAML{
		{ID: "orbitalis", Name: "Orbitalis Heavy", Cost: 140000, Reliability: 0.97, CadenceDays: 10},
		{ID: "peregrine", Name: "Peregrine Launch Co-op", Cost: 85000, Reliability: 0.90, CadenceDays: 21},
		{ID: "stellarfoundry", Name: "Stellar Foundry", Cost: 200000, Reliability: 0.99, CadenceDays: 14},
	},
	Crews: []crewYAML{
		{ID: "veterans", Name: "Veteran Drill Crew", Cost: 90000, Efficiency: 1.0, Reliability: 0.96},
		{ID: "contractors", Name: "Licensed Contractors", Cost: 55000, Efficiency: 0.85, Reliability: 0.90},
		{ID: "greenhorns", Name: "Greenhorn Roster", Cost: 30000, Efficiency: 0.7, Reliability: 0.80},
	},
	Security: []securityYAML{
		{ID: "aegis", Name: "Aegis Convoy Services", Cost: 45000, Attack: 4, Defense: 6},
		{ID: "ironveil", Name: "Iron Veil PMC", Cost: 70000, Attack: 7, Defense: 8},
	},
	Competitors: []string{
		"Heliotrope Mining",
		"Kuiper & Sons",
		"Red Regolith Corp",
		"Outward Ventures",
	},
}
