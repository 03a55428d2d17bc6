package poker

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jnadimpalli/poker-touchstone/cards"
	"github.com/jnadimpalli/poker-touchstone/hands"
)

var errUnknownPlayer = errors.New("unknown player")

// Table holds the players and the shared community cards for one hand.
// Seating order is fixed at creation and carried through to showdown
// results and winner lists.
type Table struct {
	ID        string
	Players   []Player
	Community cards.Stack
}

// NewTable creates a table seating the given players.
func NewTable(players ...Player) (*Table, error) {
	if len(players) == 0 {
		return nil, errors.New("a table needs at least one player")
	}

	seated := make([]Player, len(players))
	copy(seated, players)

	return &Table{
		ID:      uuid.NewString(),
		Players: seated,
	}, nil
}

// SetHoleCards assigns a player their two private cards.
func (t *Table) SetHoleCards(playerID string, hole cards.Stack) error {
	for i := range t.Players {
		if t.Players[i].ID == playerID {
			t.Players[i].HoleCards = hole.Clone()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errUnknownPlayer, playerID)
}

// SetCommunity places the five shared cards on the table.
func (t *Table) SetCommunity(community cards.Stack) {
	t.Community = community.Clone()
}

// DealFrom deals two hole cards to every player and five community cards
// from the given deck, returning the remaining deck.
func (t *Table) DealFrom(deck cards.Stack) cards.Stack {
	for i := range t.Players {
		t.Players[i].HoleCards, deck = cards.DealCards(deck, 2)
	}
	t.Community, deck = cards.DealCards(deck, 5)
	return deck
}

// PlayerView returns what a player sees: their own cards and the table.
// Both stacks are snapshots, so callers cannot mutate the table through
// them.
func (t *Table) PlayerView(playerID string) (hole, community cards.Stack, err error) {
	for _, p := range t.Players {
		if p.ID == playerID {
			return p.HoleCards.Clone(), t.Community.Clone(), nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", errUnknownPlayer, playerID)
}

// Showdown evaluates every player's best five-card hand and picks the
// winner(s). Evaluations are independent and pure, so they run in one
// goroutine per player; winners are picked only after all of them finish.
// Results and winners preserve seating order.
func (t *Table) Showdown() ([]hands.PlayerResult, []string, error) {
	results := make([]hands.PlayerResult, len(t.Players))
	errs := make([]error, len(t.Players))

	var wg sync.WaitGroup
	for i, p := range t.Players {
		wg.Add(1)
		go func(i int, p Player) {
			defer wg.Done()
			result, err := hands.EvaluateBestHand(p.HoleCards, t.Community)
			if err != nil {
				errs[i] = fmt.Errorf("player %s: %w", p.Name, err)
				return
			}
			results[i] = hands.PlayerResult{PlayerID: p.ID, Result: result}
		}(i, p)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, nil, err
	}

	winners, err := hands.PickWinners(results)
	if err != nil {
		return nil, nil, err
	}
	return results, winners, nil
}

// PlayerByID looks up a seated player.
func (t *Table) PlayerByID(playerID string) (Player, bool) {
	for _, p := range t.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return Player{}, false
}
