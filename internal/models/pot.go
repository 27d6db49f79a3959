package models

import "time"

// PotState is the lifecycle state of a pot.
type PotState string

// A pot starts Brewed and moves to Drunk exactly once.
const (
	PotBrewed PotState = "brewed"
	PotDrunk  PotState = "drunk"
)

// Pot represents a brewing event row in the database, joined with the tea
// name and brewer username.
type Pot struct {
	ID             int64      `db:"id"`              // Primary key
	BrewedAt       time.Time  `db:"brewed_at"`       // Set at creation
	DrankAt        *time.Time `db:"drank_at"`        // Nil until consumed
	TeaID          int64      `db:"tea_id"`          // Tea reference
	BrewerID       int64      `db:"brewer_id"`       // Brewer reference
	TeaName        string     `db:"tea_name"`        // Joined from teas
	BrewerUsername string     `db:"brewer_username"` // Joined from brewers
	BrewerName     string     `db:"brewer_name"`     // Joined from brewers
}

// Drinkable reports whether the pot has not been drunk yet.
func (p *Pot) Drinkable() bool {
	return p.DrankAt == nil
}

// State returns the lifecycle state of the pot.
func (p *Pot) State() PotState {
	if p.Drinkable() {
		return PotBrewed
	}
	return PotDrunk
}

// BrewerDisplayName returns the brewer's name or username.
func (p *Pot) BrewerDisplayName() string {
	if p.BrewerName != "" {
		return p.BrewerName
	}
	return p.BrewerUsername
}

// PotFilter narrows pot listings. Zero fields match everything.
type PotFilter struct {
	TeaID    int64
	BrewerID int64
}
