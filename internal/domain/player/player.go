// Package player holds the company-side state the simulation consumes:
// balance, level, and relationship standing with security firms. Balance
// moves only through explicit credit/debit calls.
package player

import "errors"

var ErrInsufficientFunds = errors.New("insufficient funds")

type Player struct {
	Balance float64 `json:"balance"`
	Level   int     `json:"level"`

	// ReliabilityBonus is the tech-tree modifier added to provider and crew
	// reliability before clamping, zero for a fresh company.
	ReliabilityBonus float64 `json:"reliability_bonus,omitempty"`

	// Relationships maps security-firm id to standing level; the combat
	// resolver converts standing to a stat bonus.
	Relationships map[string]int `json:"relationships,omitempty"`

	MissionsCompleted int `json:"missions_completed"`
	PiratesDefeated   int `json:"pirates_defeated"`
}

func (p *Player) Credit(amount float64) {
	p.Balance += amount
}

// Debit withdraws amount or fails without partial effect.
func (p *Player) Debit(amount float64) error {
	if amount > p.Balance {
		return ErrInsufficientFunds
	}
	p.Balance -= amount
	return nil
}

func (p *Player) RelationshipLevel(securityID string) int {
	return p.Relationships[securityID]
}
