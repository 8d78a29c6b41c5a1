package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/txdriver/codec"
)

func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show head height, pool size and account balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			height, err := s.client.RPC.BlockNumber(ctx)
			if err != nil {
				return fmt.Errorf("get block number: %w", err)
			}
			pool, err := s.client.RPC.TxPoolStatus(ctx)
			if err != nil {
				return fmt.Errorf("get txpool status: %w", err)
			}
			log.Info().
				Uint64("block", height).
				Uint("pending", uint(pool.Pending)).
				Uint("queued", uint(pool.Queued)).
				Msg("node")

			for i, acc := range s.accounts {
				bal, err := s.client.RPC.BalanceAt(ctx, acc)
				if err != nil {
					return fmt.Errorf("get balance of %s: %w", acc.Hex(), err)
				}
				log.Info().Int("index", i).Str("account", acc.Hex()).Str("balance", codec.FromWei(bal)).Msg("account")
			}
			return nil
		},
	}
	return cmd
}
