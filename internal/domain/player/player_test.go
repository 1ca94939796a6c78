package player

import (
	"errors"
	"testing"
)

func TestDebitAllOrNothing(t *testing.T) {
	p := Player{Balance: 100}
	if err := p.Debit(60); err != nil {
		t.Fatalf("debit: %v", err)
	}
	if p.Balance != 40 {
		t.Fatalf("balance: got %v, want 40", p.Balance)
	}
	if err := p.Debit(50); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if p.Balance != 40 {
		t.Fatalf("failed debit must not move the balance, got %v", p.Balance)
	}
	p.Credit(10)
	if p.Balance != 50 {
		t.Fatalf("credit: got %v, want 50", p.Balance)
	}
}

func TestRelationshipLevelDefaultsToZero(t *testing.T) {
	p := Player{}
	if got := p.RelationshipLevel("aegis"); got != 0 {
		t.Fatalf("nil map standing: got %d", got)
	}
	p.Relationships = map[string]int{"aegis": 3}
	if got := p.RelationshipLevel("aegis"); got != 3 {
		t.Fatalf("standing: got %d", got)
	}
}
