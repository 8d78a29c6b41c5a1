package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/b-harvest/txdriver/client"
	"github.com/b-harvest/txdriver/codec"
	"github.com/b-harvest/txdriver/config"
	"github.com/b-harvest/txdriver/driver"
)

type session struct {
	cfg      config.Config
	client   *client.Client
	accounts []common.Address
}

// openSession sets the logger, reads the config, connects to the node and
// resolves the accounts to use. The caller must close the session.
func openSession(ctx context.Context) (*session, error) {
	if err := SetLogger(logLevel); err != nil {
		return nil, fmt.Errorf("set logger: %w", err)
	}

	cfg, err := config.Read(configPath)
	if err != nil {
		return nil, err
	}

	var only []common.Address
	if cfg.Custom.AccountsFile != "" {
		only, err = config.ReadAccounts(cfg.Custom.AccountsFile)
		if err != nil {
			return nil, err
		}
	}

	c, err := client.NewClient(cfg.RPC.Address, cfg.RPC.Timeout)
	if err != nil {
		return nil, fmt.Errorf("new client: %w", err)
	}

	accounts, err := c.ManagedAccounts(ctx, only)
	if err != nil {
		c.Stop() // nolint: errcheck
		return nil, err
	}
	log.Debug().Str("rpc", cfg.RPC.Address).Int("accounts", len(accounts)).Msg("connected")

	return &session{
		cfg:      cfg,
		client:   c,
		accounts: accounts,
	}, nil
}

func (s *session) Close() {
	s.client.Stop() // nolint: errcheck
}

func (s *session) unlockAll(ctx context.Context, passphrase string, showBalance bool) error {
	opts := []driver.UnlockOption{driver.WithUnlockDuration(s.cfg.Custom.Unlock())}
	if showBalance {
		opts = append(opts, driver.WithBalances())
	}
	u := driver.NewUnlocker(s.client.RPC, opts...)

	for rec, err := range u.UnlockAll(ctx, s.accounts, passphrase) {
		if err != nil {
			return err
		}
		ev := log.Info().Int("index", rec.Index).Str("account", rec.Account.Hex())
		if rec.Balance != nil {
			ev = ev.Str("balance", codec.FromWei(rec.Balance))
		}
		ev.Msg("unlocked")
	}
	log.Info().Int("accounts", len(s.accounts)).Msg("unlocked all owned accounts")
	return nil
}

func (s *session) startMiner(ctx context.Context, threads int) error {
	if err := s.client.RPC.StartMining(ctx, threads); err != nil {
		return fmt.Errorf("start miner: %w", err)
	}
	log.Info().Int("threads", threads).Msg("miner started")
	return nil
}

func (s *session) stopMiner(ctx context.Context) error {
	if err := s.client.RPC.StopMining(ctx); err != nil {
		return fmt.Errorf("stop miner: %w", err)
	}
	log.Info().Msg("miner stopped")
	return nil
}
