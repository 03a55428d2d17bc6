package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jnadimpalli/poker-touchstone/config"
	"github.com/jnadimpalli/poker-touchstone/logger"
	"github.com/jnadimpalli/poker-touchstone/server"
)

var (
	serveConfigPath string
	serveAddr       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hand evaluation service",
	Long: `Serve starts the evaluation service. It answers showdown requests on
POST /api/evaluate and over WebSocket on /ws.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		log, err := logger.New(cfg.Server.Mode)
		if err != nil {
			return err
		}
		defer log.Sync()

		return server.NewServer(log).Start(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to yaml config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
