package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "poker-touchstone",
	Short: "Texas Hold'em showdown evaluator",
	Long: `poker-touchstone finds the strongest five-card hand each player can make
from two hole cards and five community cards, and picks the winner(s).

It ships canned scenarios, an ad-hoc evaluator, and a small evaluation
service speaking REST and WebSocket.`,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
