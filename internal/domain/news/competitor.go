package news

import "fmt"

type competitorArchetype struct {
	id       string
	blocking bool
	// Templates take the competitor name, and the target id when needsTarget.
	needsTarget bool
	templates   []string
}

// Five archetypes: two block a target permanently, three are noise.
var competitorArchetypes = []competitorArchetype{
	{
		id:          "launch_swarm",
		blocking:    true,
		needsTarget: true,
		templates: []string{
			"%s has launched a swarm of claim beacons at %s. The target is off the board.",
			"Breaking: %s saturated %s with prospecting drones overnight.",
		},
	},
	{
		id:          "establish_outpost",
		blocking:    true,
		needsTarget: true,
		templates: []string{
			"%s broke ground on a permanent outpost at %s.",
			"%s's construction barges have anchored at %s. Claim filings followed within the hour.",
		},
	},
	{
		id:          "spotted_near",
		blocking:    false,
		needsTarget: true,
		templates: []string{
			"Telescope network: %s survey craft spotted loitering near %s.",
			"%s tugs were tracked on a slow transfer toward %s. Intentions unclear.",
		},
	},
	{
		id:       "ceo_statement",
		blocking: false,
		templates: []string{
			"%s's CEO calls the belt \"an ocean with no storms\" in a bullish shareholder letter.",
			"In a press tour, %s leadership promises to \"out-dig everyone in this economy.\"",
		},
	},
	{
		id:       "failed_delivery",
		blocking: false,
		templates: []string{
			"%s confirms a returning payload burned up on entry. Insurers are circling.",
			"A %s hauler missed its aerobrake window; the cargo is on a long trip to nowhere.",
		},
	},
}

// DefaultCompetitors is the stock roster used when the catalog supplies none.
var DefaultCompetitors = []string{
	"Heliotrope Mining",
	"Kuiper & Sons",
	"Red Regolith Corp",
	"Outward Ventures",
}

// CompetitorNews invents one competitor action. The archetype, competitor and
// template are drawn uniformly. Blocking archetypes pick their target from the
// caller's eligible (currently unblocked) ids and add it to the blocked set
// permanently; with no eligible target they produce nothing.
func (s *Scheduler) CompetitorNews(now float64, competitors, eligibleTargets []string) (NewsItem, bool) {
	if len(competitors) == 0 {
		competitors = DefaultCompetitors
	}
	arch := competitorArchetypes[s.Rand.Intn(len(competitorArchetypes))]
	who := competitors[s.Rand.Intn(len(competitors))]
	tpl := arch.templates[s.Rand.Intn(len(arch.templates))]

	if !arch.needsTarget {
		return newItem(CategoryCompetitor, now, fmt.Sprintf(tpl, who)), true
	}

	candidates := eligibleTargets
	if arch.blocking {
		candidates = candidates[:0:0]
		for _, id := range eligibleTargets {
			if !s.blocked[id] {
				candidates = append(candidates, id)
			}
		}
	}
	if len(candidates) == 0 {
		return NewsItem{}, false
	}
	target := candidates[s.Rand.Intn(len(candidates))]

	item := newItem(CategoryCompetitor, now, fmt.Sprintf(tpl, who, target))
	if arch.blocking {
		s.blocked[target] = true
		item.Action = &Action{Kind: ActionBlockTarget, TargetID: target}
	}
	return item, true
}
