package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// UnlockAccount unlocks account with passphrase for duration.
// A zero duration lets the node apply its default.
func (c *Client) UnlockAccount(ctx context.Context, account common.Address, passphrase string, duration time.Duration) error {
	var seconds *uint64
	if duration > 0 {
		s := uint64(duration / time.Second)
		seconds = &s
	}

	var ok bool
	if err := c.call(ctx, &ok, "personal_unlockAccount", account, passphrase, seconds); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("node refused to unlock %s", account.Hex())
	}
	return nil
}
