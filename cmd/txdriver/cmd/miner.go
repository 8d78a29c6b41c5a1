package cmd

import (
	"github.com/spf13/cobra"
)

func MinerStartCmd() *cobra.Command {
	var threads int

	cmd := &cobra.Command{
		Use:   "miner-start",
		Short: "Start the node's miner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if !cmd.Flags().Changed("threads") {
				threads = int(s.cfg.Custom.MinerThreads)
			}
			return s.startMiner(ctx, threads)
		},
	}

	cmd.Flags().IntVar(&threads, "threads", 0, "miner threads, 0 for the node default (overrides config)")
	return cmd
}

func MinerStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "miner-stop",
		Short: "Stop the node's miner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.stopMiner(ctx)
		},
	}
	return cmd
}
