package hands

import (
	"sort"

	"github.com/jnadimpalli/poker-touchstone/cards"
)

// rankBase separates categories in the score. It must exceed the largest
// possible kicker sum (14 in every position of base 100, about 1.42e9) so
// that a hand of a higher category always outscores any hand of a lower
// one. Scores are int64 to hold RoyalFlush's band.
const rankBase = 10_000_000_000

// kickerBase is the positional base for kicker encoding. Any value above
// the maximum rank (14) prevents a lower position from carrying into a
// higher one.
const kickerBase = 100

// score folds a classification into a single int64 such that numeric
// comparison reproduces poker hand comparison, including same-category
// tie-breaks.
func score(cls classification) int64 {
	type entry struct {
		value int
		count int
	}

	wheel := cls.straight && cls.straightHigh == cards.Five.Value()

	entries := make([]entry, 0, 5)
	for i, n := range cls.rankCount {
		if n == 0 {
			continue
		}
		value := i + 2
		// In the wheel straight the ace plays low.
		if wheel && value == cards.Ace.Value() {
			value = 1
		}
		entries = append(entries, entry{value: value, count: n})
	}

	// Quads, trips and pairs break ties before singletons; within equal
	// multiplicity the higher rank comes first.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].value > entries[j].value
	})

	kickers := make([]int, 0, 5)
	for _, e := range entries {
		for i := 0; i < e.count; i++ {
			kickers = append(kickers, e.value)
		}
	}
	for len(kickers) < 5 {
		kickers = append(kickers, 0)
	}

	total := int64(cls.rank) * rankBase
	for i := 0; i < 5; i++ {
		total += int64(kickers[i]) * ipow(kickerBase, 4-i)
	}
	return total
}

// ipow computes base**exp with exact integer arithmetic. math.Pow is not an
// option here: the ordering relies on exact positional weights.
func ipow(base int64, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
