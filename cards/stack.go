package cards

import "strings"

// Stack represents multiple cards.
type Stack []Card

// NewStack creates a new stack from the given cards.
func NewStack(cards ...Card) Stack {
	return cards
}

// StackFromStrings parses a stack from card shorthands, e.g. "Ah", "10♠".
func StackFromStrings(shorthands ...string) (Stack, error) {
	stack := make(Stack, 0, len(shorthands))
	for _, s := range shorthands {
		card, err := CardFromString(s)
		if err != nil {
			return nil, err
		}
		stack = append(stack, card)
	}
	return stack, nil
}

// Clone returns an independent copy of the stack. Use it whenever a stack
// is handed out for display so the receiver cannot mutate the original.
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	clone := make(Stack, len(s))
	copy(clone, s)
	return clone
}

// Contains reports whether the stack holds the given card.
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// HasDuplicates reports whether any card appears more than once.
func (s Stack) HasDuplicates() bool {
	seen := make(map[Card]bool, len(s))
	for _, c := range s {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

// String renders the stack as a space-separated list, e.g. "A♥ K♥ Q♥".
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
