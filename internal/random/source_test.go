package random

import "testing"

func TestSeededReplaysIdentically(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d diverged between equal seeds", i)
		}
	}
}

func TestScriptedSequence(t *testing.T) {
	s := &Scripted{Draws: []float64{0.25, 0.99}}
	if got := s.Float64(); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := s.Intn(10); got != 9 {
		t.Fatalf("expected 9 from draw 0.99, got %d", got)
	}
	if got := s.Float64(); got != 0 {
		t.Fatalf("expected zero fallback after script exhausted, got %v", got)
	}
}

func TestBetweenStaysInRange(t *testing.T) {
	src := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		v := Between(src, 1.10, 1.25)
		if v < 1.10 || v >= 1.25 {
			t.Fatalf("value %v outside [1.10, 1.25)", v)
		}
	}
}
