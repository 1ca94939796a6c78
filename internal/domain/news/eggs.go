package news

import "time"

// Facts is the read-only slice of game state the scheduler inspects for
// easter eggs and phrasing. The orchestrator assembles it each tick.
type Facts struct {
	Date              time.Time
	Balance           float64
	ActiveMissions    int
	MissionsCompleted int
	PiratesDefeated   int
}

type easterEgg struct {
	id        string
	category  Category
	message   string
	predicate func(Facts) bool
}

var easterEggs = []easterEgg{
	{
		id:       "april_fools",
		category: CategoryFlavor,
		message:  "FLASH: The belt has been declared legally cheese. Drilling permits now require a cracker license.",
		predicate: func(f Facts) bool {
			return f.Date.Month() == time.April && f.Date.Day() == 1
		},
	},
	{
		id:       "first_million",
		category: CategoryImportant,
		message:  "Your accountant confirms it: the company crossed one million credits.",
		predicate: func(f Facts) bool {
			return f.Balance >= 1_000_000
		},
	},
	{
		id:       "pirate_hunter",
		category: CategoryFlavor,
		message:  "Belt pirates have reportedly started circulating your fleet's silhouette with a 'do not engage' note.",
		predicate: func(f Facts) bool {
			return f.PiratesDefeated >= 3
		},
	},
	{
		id:       "full_docket",
		category: CategoryFlavor,
		message:  "Traffic control grumbles: five of your missions are burning simultaneously.",
		predicate: func(f Facts) bool {
			return f.ActiveMissions >= 5
		},
	},
	{
		id:       "belt_baron",
		category: CategoryImportant,
		message:  "Ten successful expeditions. The trade press has started calling you a belt baron.",
		predicate: func(f Facts) bool {
			return f.MissionsCompleted >= 10
		},
	},
}

// CheckEasterEggs fires eggs whose predicate transitioned false to true since
// the previous check. The edge detector lives here: each egg's last evaluation
// is tracked (and serialized), so a predicate that stays true does not refire,
// and a fired id is permanently suppressed until ResetEgg.
func (s *Scheduler) CheckEasterEggs(facts Facts, now float64) []NewsItem {
	var fired []NewsItem
	for _, egg := range easterEggs {
		cur := egg.predicate(facts)
		prev := s.eggLastEval[egg.id]
		s.eggLastEval[egg.id] = cur
		if !cur || prev || s.firedEggs[egg.id] {
			continue
		}
		s.firedEggs[egg.id] = true
		fired = append(fired, newItem(egg.category, now, egg.message))
	}
	return fired
}

// ResetEgg re-arms a fired egg by id, clearing both the fired mark and the
// edge-detector memory.
func (s *Scheduler) ResetEgg(id string) {
	delete(s.firedEggs, id)
	delete(s.eggLastEval, id)
}

// FiredEggs lists fired ids in sorted order.
func (s *Scheduler) FiredEggs() []string {
	return sortedKeys(s.firedEggs)
}
