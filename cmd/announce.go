package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sanity-io/litter"

	"github.com/jnadimpalli/poker-touchstone/hands"
	"github.com/jnadimpalli/poker-touchstone/poker"
)

// showPlayerViews prints what each player sees: their cards and the table.
func showPlayerViews(table *poker.Table) {
	for _, p := range table.Players {
		hole, community, err := table.PlayerView(p.ID)
		if err != nil {
			continue
		}
		fmt.Printf("%s sees cards: %s and table: %s\n", p.Name, hole, community)
	}
}

// announceResults prints each player's best hand and the winner(s).
func announceResults(table *poker.Table, results []hands.PlayerResult, winners []string, verbose bool) {
	rankColor := color.New(color.FgCyan, color.Bold)

	for _, r := range results {
		player, _ := table.PlayerByID(r.PlayerID)
		fmt.Printf("%s best combo: %s, called a %s\n",
			player.Name, r.Result.BestFive, rankColor.Sprint(r.Result.Rank))
	}

	names := make([]string, 0, len(winners))
	var winningRank hands.HandRank
	for _, id := range winners {
		player, _ := table.PlayerByID(id)
		names = append(names, player.Name)
		for _, r := range results {
			if r.PlayerID == id {
				winningRank = r.Result.Rank
			}
		}
	}
	color.Green("--> %s win with %s", strings.Join(names, ", "), winningRank)

	if verbose {
		litter.Dump(results)
	}
}
