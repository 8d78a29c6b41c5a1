package driver

import (
	"context"
	"fmt"
	"iter"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// UnlockLog describes one unlocked account. Balance is nil unless balances were requested.
type UnlockLog struct {
	Index   int
	Account common.Address
	Balance *big.Int
}

// UnlockOption configures an Unlocker.
type UnlockOption func(*Unlocker)

// WithBalances makes the unlocker read each account's balance after unlocking it.
func WithBalances() UnlockOption {
	return func(u *Unlocker) {
		u.balances = true
	}
}

// WithUnlockDuration keeps accounts unlocked for d. Zero leaves the choice to the node.
func WithUnlockDuration(d time.Duration) UnlockOption {
	return func(u *Unlocker) {
		u.duration = d
	}
}

// Unlocker unlocks node-managed accounts one after another.
type Unlocker struct {
	dir      AccountDirectory
	duration time.Duration
	balances bool
}

// NewUnlocker returns an Unlocker working through dir.
func NewUnlocker(dir AccountDirectory, opts ...UnlockOption) *Unlocker {
	u := &Unlocker{dir: dir}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UnlockAll unlocks every account with passphrase and yields one log per account.
// The first failure is yielded as an error and ends the sequence.
func (u *Unlocker) UnlockAll(ctx context.Context, accounts []common.Address, passphrase string) iter.Seq2[UnlockLog, error] {
	consumed := false
	return func(yield func(UnlockLog, error) bool) {
		if consumed {
			yield(UnlockLog{}, ErrSequenceConsumed)
			return
		}
		consumed = true

		for i, acc := range accounts {
			rec, err := u.unlock(ctx, i, acc, passphrase)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (u *Unlocker) unlock(ctx context.Context, i int, acc common.Address, passphrase string) (UnlockLog, error) {
	if err := ctx.Err(); err != nil {
		return UnlockLog{}, err
	}
	if err := u.dir.UnlockAccount(ctx, acc, passphrase, u.duration); err != nil {
		return UnlockLog{}, &UnlockError{Index: i, Account: acc, Err: err}
	}

	rec := UnlockLog{Index: i, Account: acc}
	if u.balances {
		bal, err := u.dir.BalanceAt(ctx, acc)
		if err != nil {
			return UnlockLog{}, fmt.Errorf("get balance of %s: %w", acc.Hex(), err)
		}
		rec.Balance = bal
	}
	return rec, nil
}
