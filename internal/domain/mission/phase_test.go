package mission

import "testing"

func TestValidateTable(t *testing.T) {
	if err := ValidateTable(); err != nil {
		t.Fatalf("transition table invalid: %v", err)
	}
}

func TestTerminalPhasesHaveNoEdges(t *testing.T) {
	for p := Phase(0); p < phaseCount; p++ {
		def, ok := Definition(p)
		if !ok {
			t.Fatalf("phase %s has no definition", p)
		}
		if def.Terminal && len(def.Edges) != 0 {
			t.Fatalf("terminal phase %s has outgoing edges", p)
		}
		if !def.Terminal && len(def.Edges) == 0 {
			t.Fatalf("non-terminal phase %s has no outgoing edges", p)
		}
	}
}

func TestPhaseNameRoundTrip(t *testing.T) {
	for p := Phase(0); p < phaseCount; p++ {
		got, ok := PhaseFromString(p.String())
		if !ok || got != p {
			t.Fatalf("round trip failed for %s: got %v ok=%v", p, got, ok)
		}
	}
	if _, ok := PhaseFromString("warp_drive_failure"); ok {
		t.Fatal("expected unknown phase name to be rejected")
	}
}

func TestPhaseTextMarshalling(t *testing.T) {
	b, err := Drilling.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var p Phase
	if err := p.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p != Drilling {
		t.Fatalf("expected drilling, got %s", p)
	}
	if err := p.UnmarshalText([]byte("nope")); err == nil {
		t.Fatal("expected error for unknown phase text")
	}
}
