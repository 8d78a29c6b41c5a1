package cmd

import (
	"github.com/spf13/cobra"
)

func UnlockCmd() *cobra.Command {
	var showBalance bool

	cmd := &cobra.Command{
		Use:   "unlock [passphrase]",
		Short: "Unlock every account the node manages",
		Long: `Unlock every account the node manages. The passphrase argument overrides
the configured one, which defaults to the empty string.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			passphrase := s.cfg.Custom.Passphrase
			if len(args) == 1 {
				passphrase = args[0]
			}
			return s.unlockAll(ctx, passphrase, showBalance || s.cfg.Custom.ShowBalance)
		},
	}

	cmd.Flags().BoolVar(&showBalance, "show-balance", false, "log each account's balance")
	return cmd
}
