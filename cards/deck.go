package cards

import (
	"math/rand"
	"time"
)

// NewDeck creates a standard deck of 52 cards.
func NewDeck() Stack {
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	deck := make(Stack, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}

	return deck
}

// ShuffleDeck shuffles a deck of cards randomly.
func ShuffleDeck(deck Stack) Stack {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	shuffled := make(Stack, len(deck))
	copy(shuffled, deck)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// DealCards deals count cards and returns them with the remaining deck.
func DealCards(deck Stack, count int) (Stack, Stack) {
	if count > len(deck) {
		count = len(deck)
	}

	dealt := make(Stack, count)
	copy(dealt, deck[:count])

	return dealt, deck[count:]
}
