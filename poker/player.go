package poker

import (
	"github.com/google/uuid"
	"github.com/jnadimpalli/poker-touchstone/cards"
)

// Player represents a player at the table, holding two private cards.
type Player struct {
	ID        string
	Name      string
	HoleCards cards.Stack
}

// NewPlayer creates a player with a fresh ID.
func NewPlayer(name string) Player {
	return Player{
		ID:   uuid.NewString(),
		Name: name,
	}
}
