package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/txdriver/config"
)

var (
	logLevel   string
	configPath string
)

// RootCmd returns the txdriver command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txdriver",
		Short: "Drive transfer transactions between the accounts of an Ethereum node",
		Long: `Unlock the accounts an Ethereum node manages, start its miner and fire
transfer transactions round-robin between them over JSON-RPC.`,
	}

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", zerolog.InfoLevel.String(), "logging level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "config file path")

	cmd.AddCommand(
		NtxsCmd(),
		UnlockCmd(),
		MinerStartCmd(),
		MinerStopCmd(),
		StatusCmd(),
	)
	return cmd
}

// SetLogger sets the global zerolog logger. Every invocation is tagged with a fresh run id.
func SetLogger(logLevel string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
	return nil
}
