package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jnadimpalli/poker-touchstone/cards"
	"github.com/jnadimpalli/poker-touchstone/poker"
)

// scenario is a canned showdown: each player's hole cards plus the table.
type scenario struct {
	title     string
	holeCards []cards.Stack
	community cards.Stack
}

var scenarios = []scenario{
	{
		title: "Scenario 1: Top hand vs simple pair",
		holeCards: []cards.Stack{
			{cards.MustCard("Ah"), cards.MustCard("Kh")},
			{cards.MustCard("2d"), cards.MustCard("7c")},
		},
		community: cards.Stack{
			cards.MustCard("Qh"),
			cards.MustCard("Jh"),
			cards.MustCard("10h"),
			cards.MustCard("5h"),
			cards.MustCard("2c"),
		},
	},
	{
		title: "Scenario 2: Big pair vs smaller pair",
		holeCards: []cards.Stack{
			{cards.MustCard("Jh"), cards.MustCard("Jd")},
			{cards.MustCard("10d"), cards.MustCard("7c")},
		},
		community: cards.Stack{
			cards.MustCard("Ah"),
			cards.MustCard("9c"),
			cards.MustCard("4h"),
			cards.MustCard("10h"),
			cards.MustCard("Qc"),
		},
	},
}

var scenariosVerbose bool

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run the canned showdown scenarios",
	Long: `Scenarios runs the two canonical showdowns end to end: a royal flush
against a simple pair, and a pair of jacks against a pair of tens. Each
run shows the players' views, their best five-card hands, and the
winner(s).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, sc := range scenarios {
			if err := runScenario(sc, scenariosVerbose); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	scenariosCmd.Flags().BoolVarP(&scenariosVerbose, "verbose", "v", false, "dump raw hand results")
}

// runScenario seats one player per hole-card pair, deals the canned cards,
// and announces the showdown.
func runScenario(sc scenario, verbose bool) error {
	fmt.Println()
	color.New(color.Bold).Printf("*** %s ***\n", sc.title)

	players := make([]poker.Player, len(sc.holeCards))
	for i := range sc.holeCards {
		players[i] = poker.NewPlayer(fmt.Sprintf("Player %d", i+1))
	}

	table, err := poker.NewTable(players...)
	if err != nil {
		return err
	}

	for i, hole := range sc.holeCards {
		if err := table.SetHoleCards(table.Players[i].ID, hole); err != nil {
			return err
		}
	}
	table.SetCommunity(sc.community)

	showPlayerViews(table)

	results, winners, err := table.Showdown()
	if err != nil {
		return err
	}

	announceResults(table, results, winners, verbose)
	return nil
}
