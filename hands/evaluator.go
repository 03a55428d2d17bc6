package hands

import (
	"errors"
	"fmt"

	"github.com/jnadimpalli/poker-touchstone/cards"
)

var (
	// ErrInvalidHand reports a showdown input that is not exactly seven
	// distinct cards (two hole cards plus five community cards).
	ErrInvalidHand = errors.New("invalid hand input")

	// ErrNoResults reports a winner selection over zero hand results.
	ErrNoResults = errors.New("no hand results")
)

// HandResult is the outcome of evaluating a player's cards: the strength
// category, the five cards forming the best hand, and a score that totally
// orders hands across categories and kickers.
type HandResult struct {
	Rank     HandRank
	BestFive cards.Stack
	Score    int64
}

// PlayerResult pairs a player with their best hand at showdown.
type PlayerResult struct {
	PlayerID string
	Result   HandResult
}

// classification holds the facts extracted from a five-card hand that the
// scorer needs: rank multiplicities, the flush flag, and the straight flag
// with its top value.
type classification struct {
	rank         HandRank
	rankCount    [13]int // indexed by rank value minus 2
	flush        bool
	straight     bool
	straightHigh int
}

// EvaluateBestHand finds the strongest five-card hand available from two
// hole cards and five community cards. It fails with ErrInvalidHand unless
// the combined input is exactly seven distinct cards.
func EvaluateBestHand(hole, community cards.Stack) (HandResult, error) {
	if len(hole) != 2 {
		return HandResult{}, fmt.Errorf("%w: expected 2 hole cards, got %d", ErrInvalidHand, len(hole))
	}
	if len(community) != 5 {
		return HandResult{}, fmt.Errorf("%w: expected 5 community cards, got %d", ErrInvalidHand, len(community))
	}

	combined := make(cards.Stack, 0, 7)
	combined = append(combined, hole...)
	combined = append(combined, community...)
	if combined.HasDuplicates() {
		return HandResult{}, fmt.Errorf("%w: duplicate card in %s", ErrInvalidHand, combined)
	}

	var best HandResult
	for _, combo := range combinations(combined) {
		result := evaluateFive(combo)
		if result.Score > best.Score || best.BestFive == nil {
			best = result
		}
	}
	return best, nil
}

// PickWinners returns the IDs of the players whose hand score equals the
// maximum across all results, preserving input order. It fails with
// ErrNoResults when given no results.
func PickWinners(results []PlayerResult) ([]string, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	topScore := results[0].Result.Score
	for _, r := range results[1:] {
		if r.Result.Score > topScore {
			topScore = r.Result.Score
		}
	}

	var winners []string
	for _, r := range results {
		if r.Result.Score == topScore {
			winners = append(winners, r.PlayerID)
		}
	}
	return winners, nil
}

// evaluateFive classifies and scores exactly five cards. The returned
// BestFive keeps the cards in the order they were given.
func evaluateFive(hand cards.Stack) HandResult {
	cls := classifyFive(hand)
	return HandResult{
		Rank:     cls.rank,
		BestFive: hand.Clone(),
		Score:    score(cls),
	}
}

// classifyFive determines the strength category of exactly five cards,
// along with the multiplicity and straight/flush facts scoring needs.
func classifyFive(hand cards.Stack) classification {
	if len(hand) != 5 {
		panic("hand must contain exactly 5 cards")
	}

	var cls classification
	var suitCount [4]int
	for _, c := range hand {
		cls.rankCount[c.Rank.Value()-2]++
		suitCount[c.Suit]++
	}

	for _, n := range suitCount {
		if n == 5 {
			cls.flush = true
			break
		}
	}

	cls.straight, cls.straightHigh = findStraight(&cls.rankCount)

	var pairs, threes, fours int
	for _, n := range cls.rankCount {
		switch n {
		case 2:
			pairs++
		case 3:
			threes++
		case 4:
			fours++
		}
	}

	switch {
	case cls.straight && cls.flush:
		if cls.straightHigh == cards.Ace.Value() {
			cls.rank = RoyalFlush
		} else {
			cls.rank = StraightFlush
		}
	case fours > 0:
		cls.rank = FourOfAKind
	case threes > 0 && pairs > 0:
		cls.rank = FullHouse
	case cls.flush:
		cls.rank = Flush
	case cls.straight:
		cls.rank = Straight
	case threes > 0:
		cls.rank = ThreeOfAKind
	case pairs >= 2:
		cls.rank = TwoPair
	case pairs == 1:
		cls.rank = OnePair
	default:
		cls.rank = HighCard
	}

	return cls
}

// findStraight scans the distinct rank values for a run of five consecutive
// integers and reports the run's top value. The Ace-low wheel (A-2-3-4-5)
// counts as a straight topped by the five.
func findStraight(rankCount *[13]int) (bool, int) {
	values := make([]int, 0, 5)
	for i, n := range rankCount {
		if n > 0 {
			values = append(values, i+2)
		}
	}

	run := 1
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1]+1 {
			run++
			if run >= 5 {
				return true, values[i]
			}
		} else {
			run = 1
		}
	}

	if rankCount[cards.Ace.Value()-2] > 0 &&
		rankCount[0] > 0 && rankCount[1] > 0 && rankCount[2] > 0 && rankCount[3] > 0 {
		return true, cards.Five.Value()
	}

	return false, 0
}
