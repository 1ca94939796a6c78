package inmemory

import (
	"sync"

	"orebound/internal/domain/combat"
	"orebound/internal/domain/mission"
	"orebound/internal/domain/news"
)

type Snapshot struct {
	Launches        uint64            `json:"launches"`
	TerminalByPhase map[string]uint64 `json:"terminal_by_phase"`
	CombatByOutcome map[string]uint64 `json:"combat_by_outcome"`
	NewsByCategory  map[string]uint64 `json:"news_by_category"`
}

// Recorder counts simulation KPIs in memory for the /ops/kpi endpoint.
type Recorder struct {
	mu       sync.Mutex
	launches uint64
	terminal map[string]uint64
	combat   map[string]uint64
	news     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		terminal: map[string]uint64{},
		combat:   map[string]uint64{},
		news:     map[string]uint64{},
	}
}

func (r *Recorder) RecordLaunch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.launches++
}

func (r *Recorder) RecordTerminal(phase mission.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminal[phase.String()]++
}

func (r *Recorder) RecordCombat(outcome combat.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.combat[string(outcome)]++
}

func (r *Recorder) RecordNews(category news.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.news[string(category)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := Snapshot{
		Launches:        r.launches,
		TerminalByPhase: make(map[string]uint64, len(r.terminal)),
		CombatByOutcome: make(map[string]uint64, len(r.combat)),
		NewsByCategory:  make(map[string]uint64, len(r.news)),
	}
	for k, v := range r.terminal {
		out.TerminalByPhase[k] = v
	}
	for k, v := range r.combat {
		out.CombatByOutcome[k] = v
	}
	for k, v := range r.news {
		out.NewsByCategory[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
