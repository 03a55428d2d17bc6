package cards

import "fmt"

// Suit represents a card suit.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Symbol returns the display symbol of a suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank represents a card rank. The underlying integer is the rank's
// strength, from Two (2) up to Ace (14).
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Value returns the rank's numeric strength (2-14, Ace highest).
func (r Rank) Value() int {
	return int(r)
}

// String returns the short label of a rank, e.g. "A" or "10".
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card represents a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the string representation of a card, e.g. "A♥".
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit.Symbol())
}

// Equals checks if two cards are equal.
func (c Card) Equals(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Rank: Ten, Suit: Spades}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	var suit Suit
	switch s[len(s)-1:] {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", s[len(s)-1:])
	}

	var rank Rank
	switch s[:len(s)-1] {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10", "T":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %q", s[:len(s)-1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard parses a card shorthand and panics on invalid input.
// Intended for hardcoded scenarios and tests.
func MustCard(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}
	return card
}
