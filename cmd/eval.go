package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jnadimpalli/poker-touchstone/cards"
	"github.com/jnadimpalli/poker-touchstone/poker"
)

var (
	evalHoles   []string
	evalBoard   string
	evalPlayers int
	evalVerbose bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate an ad-hoc showdown",
	Long: `Eval runs a showdown for hands given in card shorthand. Pass one --hole
per player plus the five-card --board:

  poker-touchstone eval --hole Ah,Kh --hole 2d,7c --board Qh,Jh,10h,5h,2c

Without --hole flags, eval deals a random table for --players players.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := buildEvalTable()
		if err != nil {
			return err
		}

		showPlayerViews(table)

		results, winners, err := table.Showdown()
		if err != nil {
			return err
		}

		announceResults(table, results, winners, evalVerbose)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalHoles, "hole", nil, "one player's two hole cards, comma-separated")
	evalCmd.Flags().StringVar(&evalBoard, "board", "", "the five community cards, comma-separated")
	evalCmd.Flags().IntVar(&evalPlayers, "players", 2, "number of players when dealing randomly")
	evalCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "dump raw hand results")
}

// buildEvalTable seats players from the --hole/--board flags, or deals a
// random table when no hands were given.
func buildEvalTable() (*poker.Table, error) {
	if len(evalHoles) == 0 {
		return dealRandomTable(evalPlayers)
	}

	if evalBoard == "" {
		return nil, fmt.Errorf("--board is required when --hole is given")
	}

	community, err := cards.StackFromStrings(splitShorthands(evalBoard)...)
	if err != nil {
		return nil, err
	}

	players := make([]poker.Player, len(evalHoles))
	for i := range evalHoles {
		players[i] = poker.NewPlayer(fmt.Sprintf("Player %d", i+1))
	}

	table, err := poker.NewTable(players...)
	if err != nil {
		return nil, err
	}

	for i, holeSpec := range evalHoles {
		hole, err := cards.StackFromStrings(splitShorthands(holeSpec)...)
		if err != nil {
			return nil, err
		}
		if err := table.SetHoleCards(table.Players[i].ID, hole); err != nil {
			return nil, err
		}
	}
	table.SetCommunity(community)

	return table, nil
}

// dealRandomTable shuffles a fresh deck and deals a full table.
func dealRandomTable(numPlayers int) (*poker.Table, error) {
	players := make([]poker.Player, numPlayers)
	for i := range players {
		players[i] = poker.NewPlayer(fmt.Sprintf("Player %d", i+1))
	}

	table, err := poker.NewTable(players...)
	if err != nil {
		return nil, err
	}

	deck := cards.ShuffleDeck(cards.NewDeck())
	table.DealFrom(deck)

	return table, nil
}

func splitShorthands(list string) []string {
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
