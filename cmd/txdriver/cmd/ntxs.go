package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/txdriver/codec"
	"github.com/b-harvest/txdriver/driver"
	"github.com/b-harvest/txdriver/tx"
)

func NtxsCmd() *cobra.Command {
	var (
		amount       string
		rateLimit    int64
		waitMined    bool
		waitInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ntxs [count]",
		Short: "Unlock all accounts, start the miner and send count transfers",
		Long: `Unlock every account the node manages, start the miner and send count
transfer transactions round-robin between the accounts.

Example:
  $ txdriver ntxs 1000 --amount 1.33 --rate 200
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("count must be integer: %s", args[0])
			}

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			custom := s.cfg.Custom
			if amount != "" {
				custom.TransferAmount = amount
			}
			value, err := custom.TransferWei()
			if err != nil {
				return fmt.Errorf("parse transfer amount: %w", err)
			}
			if !cmd.Flags().Changed("rate") {
				rateLimit = custom.RateLimit
			}
			if rateLimit < 0 {
				return fmt.Errorf("rate must not be negative: %d", rateLimit)
			}
			// fail before touching the node's accounts or miner
			if err := driver.ValidateRun(count, s.accounts, value); err != nil {
				return err
			}

			if err := s.unlockAll(ctx, custom.Passphrase, custom.ShowBalance); err != nil {
				return err
			}

			// transactions are only processed once the miner runs
			if !custom.SkipMiner {
				if err := s.startMiner(ctx, int(custom.MinerThreads)); err != nil {
					return err
				}
			}

			pool := tx.NewTransaction(s.client, uint64(custom.GasLimit), custom.GasPriceWei())
			d := driver.NewDriver(pool, s.client.RPC, driver.WithRateLimit(float64(rateLimit)))

			log.Info().
				Int("count", count).
				Int("accounts", len(s.accounts)).
				Str("amount", codec.FromWei(value)).
				Msg("start sending txs")

			started := time.Now()
			sent := 0
			for rec, err := range d.Run(ctx, count, s.accounts, value) {
				if err != nil {
					return err
				}
				sent++
				log.Info().
					Int("index", rec.Index).
					Uint64("block", rec.BlockHeight).
					Int("pending", rec.PendingPoolSize).
					Int("txps", rec.TxPerSecond).
					Str("tx", rec.HashPrefix()).
					Msg("tx")
			}

			elapsed := time.Since(started)
			avg := 0.0
			if elapsed > 0 {
				avg = float64(sent) / elapsed.Seconds()
			}
			log.Info().
				Str("elapsed", elapsed.Round(time.Millisecond).String()).
				Str("avg_txps", humanize.FormatFloat("#,###.##", avg)).
				Msgf("sent %s txs", humanize.Comma(int64(sent)))

			if !waitMined {
				return nil
			}

			started = time.Now()
			log.Debug().Msg("cooling down")
			err = driver.WaitForEmptyPool(ctx, pool, waitInterval, func(pending int) {
				log.Info().Int("pending", pending).Msg("waiting for pending txs to be mined")
			})
			if err != nil {
				return fmt.Errorf("wait for pending txs: %w", err)
			}
			log.Info().Str("elapsed", time.Since(started).Round(time.Millisecond).String()).Msg("done cooling down")
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "transfer amount in ether (overrides config)")
	cmd.Flags().Int64Var(&rateLimit, "rate", 0, "max txs per second, 0 for unpaced (overrides config)")
	cmd.Flags().BoolVar(&waitMined, "wait-mined", false, "wait until the pending pool is empty after sending")
	cmd.Flags().DurationVar(&waitInterval, "wait-interval", 2*time.Second, "pending pool poll interval for --wait-mined")

	return cmd
}
