// Package news is the priority-ranked, cooldown-gated event emitter: six
// categories, one-shot easter eggs, and permanent target blocking from
// competitor actions. The scheduler owns only its own timing and sets; the
// facts it phrases come from the market and mission engines.
package news

import (
	"encoding/json"
	"fmt"
	"sort"

	"orebound/internal/random"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryCritical    Category = "critical"
	CategoryImportant   Category = "important"
	CategoryMarket      Category = "market"
	CategoryCompetitor  Category = "competitor"
	CategoryEducational Category = "educational"
	CategoryFlavor      Category = "flavor"
)

// Priority ranks categories for display; higher wins. Derived from category,
// never stored independently.
var priorities = map[Category]int{
	CategoryCritical:    6,
	CategoryImportant:   5,
	CategoryMarket:      4,
	CategoryCompetitor:  3,
	CategoryEducational: 2,
	CategoryFlavor:      1,
}

// Minimum simulated-day gap between two emissions of the same category.
// Critical news is never throttled.
var cooldownDays = map[Category]float64{
	CategoryCritical:    0,
	CategoryImportant:   0.5,
	CategoryMarket:      1,
	CategoryCompetitor:  3.5,
	CategoryEducational: 0.7,
	CategoryFlavor:      1.4,
}

func (c Category) Priority() int { return priorities[c] }

// ActionKind tags the optional structured action attached to a news item.
type ActionKind string

const ActionBlockTarget ActionKind = "block_target"

type Action struct {
	Kind     ActionKind `json:"kind"`
	TargetID string     `json:"target_id,omitempty"`
}

// NewsItem is ephemeral: created, emitted, never mutated.
type NewsItem struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Priority int      `json:"priority"`
	Day      float64  `json:"day"`
	Action   *Action  `json:"action,omitempty"`
}

func newItem(category Category, day float64, text string) NewsItem {
	return NewsItem{
		ID:       uuid.NewString(),
		Text:     text,
		Category: category,
		Priority: category.Priority(),
		Day:      day,
	}
}

// Scheduler gates emission per category and tracks the monotonic fired-egg
// and blocked-target sets. All timing is in simulated days.
type Scheduler struct {
	Rand random.Source

	lastEmit    map[Category]float64
	firedEggs   map[string]bool
	blocked     map[string]bool
	eggLastEval map[string]bool
	emittedAny  map[Category]bool
}

func NewScheduler(src random.Source) *Scheduler {
	return &Scheduler{
		Rand:        src,
		lastEmit:    map[Category]float64{},
		firedEggs:   map[string]bool{},
		blocked:     map[string]bool{},
		eggLastEval: map[string]bool{},
		emittedAny:  map[Category]bool{},
	}
}

// CanShowNews reports whether the category's cooldown has elapsed. A category
// that has never emitted is always eligible.
func (s *Scheduler) CanShowNews(c Category, now float64) bool {
	cooldown, ok := cooldownDays[c]
	if !ok {
		return false
	}
	if !s.emittedAny[c] {
		return true
	}
	return now-s.lastEmit[c] >= cooldown
}

func (s *Scheduler) RecordNewsShown(c Category, now float64) {
	if _, ok := cooldownDays[c]; !ok {
		return
	}
	s.lastEmit[c] = now
	s.emittedAny[c] = true
}

// IsBlocked reports whether a competitor action has permanently taken the
// target off the board this session.
func (s *Scheduler) IsBlocked(targetID string) bool {
	return s.blocked[targetID]
}

func (s *Scheduler) BlockedTargets() []string {
	out := make([]string, 0, len(s.blocked))
	for id := range s.blocked {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// schedulerState is the wire form of everything that must survive save/load.
type schedulerState struct {
	Version        int                  `json:"version"`
	LastEmit       map[Category]float64 `json:"last_emit"`
	Emitted        map[Category]bool    `json:"emitted"`
	FiredEggs      []string             `json:"fired_eggs"`
	BlockedTargets []string             `json:"blocked_targets"`
	EggLastEval    map[string]bool      `json:"egg_last_eval"`
}

const stateVersion = 1

func (s *Scheduler) Serialize() ([]byte, error) {
	st := schedulerState{
		Version:        stateVersion,
		LastEmit:       s.lastEmit,
		Emitted:        s.emittedAny,
		FiredEggs:      sortedKeys(s.firedEggs),
		BlockedTargets: sortedKeys(s.blocked),
		EggLastEval:    s.eggLastEval,
	}
	return json.Marshal(st)
}

// Deserialize replaces the scheduler's state with the decoded snapshot. A
// malformed payload leaves the current state untouched.
func (s *Scheduler) Deserialize(data []byte) error {
	var st schedulerState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("scheduler snapshot: %w", err)
	}
	if st.Version != stateVersion {
		return fmt.Errorf("scheduler snapshot: unsupported version %d", st.Version)
	}
	for c := range st.LastEmit {
		if _, ok := cooldownDays[c]; !ok {
			return fmt.Errorf("scheduler snapshot: unknown category %q", c)
		}
	}
	s.lastEmit = map[Category]float64{}
	for c, v := range st.LastEmit {
		s.lastEmit[c] = v
	}
	s.emittedAny = map[Category]bool{}
	for c, v := range st.Emitted {
		s.emittedAny[c] = v
	}
	s.firedEggs = toSet(st.FiredEggs)
	s.blocked = toSet(st.BlockedTargets)
	s.eggLastEval = map[string]bool{}
	for id, v := range st.EggLastEval {
		s.eggLastEval[id] = v
	}
	return nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func toSet(keys []string) map[string]bool {
	out := make(map[string]bool, len(keys))
	for _, k := range keys {
		out[k] = true
	}
	return out
}
