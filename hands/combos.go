package hands

import "github.com/jnadimpalli/poker-touchstone/cards"

// comboCount is C(7,5): the number of five-card subsets of seven cards.
const comboCount = 21

const comboSize = 5

// combinations returns every five-card subset of the given cards, each
// preserving the relative order of the source. For the seven-card input
// used at showdown this is exactly 21 combos, always produced in the same
// order.
func combinations(source cards.Stack) []cards.Stack {
	combos := make([]cards.Stack, 0, comboCount)
	current := make(cards.Stack, 0, comboSize)
	buildCombos(source, 0, current, &combos)
	return combos
}

// buildCombos recursively extends current with cards from source[start:]
// until it holds five cards, then records a copy.
func buildCombos(source cards.Stack, start int, current cards.Stack, out *[]cards.Stack) {
	if len(current) == comboSize {
		*out = append(*out, current.Clone())
		return
	}
	for i := start; i < len(source); i++ {
		current = append(current, source[i])
		buildCombos(source, i+1, current, out)
		current = current[:len(current)-1]
	}
}
