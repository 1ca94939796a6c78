package mission

import (
	"testing"

	"orebound/internal/random"
)

func TestRollNextPhaseTerminalIsIdempotent(t *testing.T) {
	r := Roller{Rand: &random.Scripted{Draws: []float64{0.1, 0.9}}}
	for _, p := range []Phase{MissionSuccess, LaunchAnomaly, InFlightAnomaly, ExplosionAtDrillSite, PayloadSeized} {
		if got := r.RollNextPhase(p, 0.9, 0.9); got != p {
			t.Fatalf("terminal phase %s moved to %s", p, got)
		}
	}
}

func TestRollNextPhaseAnomalyBoundary(t *testing.T) {
	// Outbound carries a 0.02 in-flight anomaly. With both reliabilities at
	// 0.98 the adjusted chance is 0.02*(1-0.98+0.5) = 0.0104.
	cases := []struct {
		draw float64
		want Phase
	}{
		{0.0103, InFlightAnomaly},
		{0.0105, Drilling},
	}
	for _, tc := range cases {
		r := Roller{Rand: &random.Scripted{Draws: []float64{tc.draw}}}
		if got := r.RollNextPhase(Outbound, 0.98, 0.98); got != tc.want {
			t.Fatalf("draw %v: got %s, want %s", tc.draw, got, tc.want)
		}
	}
}

func TestRollNextPhaseAnomalyShrinksWithReliability(t *testing.T) {
	// The same draw lands in the anomaly bucket for a neutral crew but in the
	// success bucket for a perfect one.
	draw := 0.015
	sloppy := Roller{Rand: &random.Scripted{Draws: []float64{draw}}}
	if got := sloppy.RollNextPhase(Outbound, 0.5, 0.5); got != InFlightAnomaly {
		t.Fatalf("neutral reliability: got %s, want in-flight anomaly", got)
	}
	careful := Roller{Rand: &random.Scripted{Draws: []float64{draw}}}
	if got := careful.RollNextPhase(Outbound, 1.0, 1.0); got != Drilling {
		t.Fatalf("perfect reliability: got %s, want drilling", got)
	}
}

func TestRollNextPhaseClampsReliability(t *testing.T) {
	// Out-of-range inputs behave like their clamped values.
	a := Roller{Rand: &random.Scripted{Draws: []float64{0.0099}}}
	b := Roller{Rand: &random.Scripted{Draws: []float64{0.0099}}}
	if got, want := a.RollNextPhase(Outbound, 2.5, 1.8), b.RollNextPhase(Outbound, 1.0, 1.0); got != want {
		t.Fatalf("clamped roll diverged: got %s, want %s", got, want)
	}
}

func TestRollNextPhaseDeterministicEdges(t *testing.T) {
	r := Roller{Rand: &random.Scripted{Draws: []float64{0.999999}}}
	if got := r.RollNextPhase(ContractSigned, 0.5, 0.5); got != Launch {
		t.Fatalf("contract signing should always launch, got %s", got)
	}
	r = Roller{Rand: &random.Scripted{Draws: []float64{0.999999}}}
	if got := r.RollNextPhase(PiratesDefeated, 0.5, 0.5); got != Drilling {
		t.Fatalf("pirates-defeated table edge should be drilling, got %s", got)
	}
}

func TestCheckPirateAttack(t *testing.T) {
	r := Roller{Rand: &random.Scripted{Draws: []float64{0.0}}}
	if r.CheckPirateAttack(Inbound, 2) {
		t.Fatal("low-level player should never be ambushed")
	}

	cases := []struct {
		phase Phase
		draw  float64
		want  bool
	}{
		{Outbound, 0.049, true},
		{Outbound, 0.051, false},
		{Inbound, 0.249, true},
		{Inbound, 0.251, false},
		{Drilling, 0.0, false},
	}
	for _, tc := range cases {
		r := Roller{Rand: &random.Scripted{Draws: []float64{tc.draw}}}
		if got := r.CheckPirateAttack(tc.phase, 3); got != tc.want {
			t.Fatalf("%s draw %v: got %v, want %v", tc.phase, tc.draw, got, tc.want)
		}
	}
}

func TestAmbushAndResumePhases(t *testing.T) {
	if p, ok := AmbushPhase(Outbound); !ok || p != PirateAttackOutbound {
		t.Fatalf("outbound ambush: got %s ok=%v", p, ok)
	}
	if p, ok := AmbushPhase(Inbound); !ok || p != PirateAttackInbound {
		t.Fatalf("inbound ambush: got %s ok=%v", p, ok)
	}
	if _, ok := AmbushPhase(Drilling); ok {
		t.Fatal("drilling must not map to an ambush phase")
	}
	if got := ResumePhase(AmbushOutbound); got != Drilling {
		t.Fatalf("outbound resume: got %s", got)
	}
	if got := ResumePhase(AmbushInbound); got != DeliveringPayload {
		t.Fatalf("inbound resume: got %s", got)
	}
}

func TestPhaseDuration(t *testing.T) {
	legs := TripLegs{OutboundDays: 12, MiningDays: 9, ReturnDays: 11}

	r := Roller{Rand: &random.Scripted{}}
	if got := r.PhaseDuration(MissionSuccess, legs, 14); got != 0 {
		t.Fatalf("terminal duration: got %v", got)
	}
	if got := r.PhaseDuration(Outbound, legs, 14); got != 12 {
		t.Fatalf("outbound duration: got %v", got)
	}
	if got := r.PhaseDuration(Drilling, legs, 14); got != 9 {
		t.Fatalf("drilling duration: got %v", got)
	}
	if got := r.PhaseDuration(Inbound, legs, 14); got != 11 {
		t.Fatalf("inbound duration: got %v", got)
	}

	// Contract signing scales a [0.5, 1.5) factor by the launch cadence.
	r = Roller{Rand: &random.Scripted{Draws: []float64{0.5}}}
	if got := r.PhaseDuration(ContractSigned, legs, 14); got != 14 {
		t.Fatalf("contract duration: got %v, want 14", got)
	}

	r = Roller{Rand: &random.Scripted{Draws: []float64{0.0}}}
	if got := r.PhaseDuration(Launch, legs, 14); got != 1 {
		t.Fatalf("launch prep duration: got %v, want 1", got)
	}

	r = Roller{Rand: &random.Scripted{Draws: []float64{0.5}}}
	if got := r.PhaseDuration(PirateAttackInbound, legs, 14); got != 1.5 {
		t.Fatalf("combat duration: got %v, want 1.5", got)
	}
}

func TestPhaseDurationRanges(t *testing.T) {
	src := random.NewSeeded(11)
	r := Roller{Rand: src}
	legs := TripLegs{OutboundDays: 10, MiningDays: 5, ReturnDays: 10}
	for i := 0; i < 500; i++ {
		if d := r.PhaseDuration(Launch, legs, 14); d < launchPrepDaysMin || d >= launchPrepDaysMax {
			t.Fatalf("launch prep out of range: %v", d)
		}
		if d := r.PhaseDuration(DeliveringPayload, legs, 14); d < deliveryDaysMin || d >= deliveryDaysMax {
			t.Fatalf("delivery out of range: %v", d)
		}
	}
}
