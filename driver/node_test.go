package driver_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var errRejected = errors.New("insufficient funds for gas * price + value")

type transfer struct {
	from, to common.Address
	value    *big.Int
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeNode plays the node's account directory, pool and chain.
type fakeNode struct {
	clock *fakeClock
	step  time.Duration

	transfers []transfer
	failAt    int

	unlocked    []common.Address
	durations   []time.Duration
	passphrases []string
	unlockErrAt int
	balances    map[common.Address]*big.Int

	pendingSeq []int
	polls      int
}

func newFakeNode() *fakeNode {
	return &fakeNode{
		clock:       &fakeClock{t: time.Unix(1000, 0)},
		failAt:      -1,
		unlockErrAt: -1,
		balances:    map[common.Address]*big.Int{},
	}
}

func (n *fakeNode) Accounts(context.Context) ([]common.Address, error) {
	return accounts(3), nil
}

func (n *fakeNode) UnlockAccount(_ context.Context, acc common.Address, passphrase string, d time.Duration) error {
	if len(n.unlocked) == n.unlockErrAt {
		return errors.New("could not decrypt key with given password")
	}
	n.unlocked = append(n.unlocked, acc)
	n.passphrases = append(n.passphrases, passphrase)
	n.durations = append(n.durations, d)
	return nil
}

func (n *fakeNode) BalanceAt(_ context.Context, acc common.Address) (*big.Int, error) {
	if bal, ok := n.balances[acc]; ok {
		return bal, nil
	}
	return big.NewInt(0), nil
}

func (n *fakeNode) Submit(_ context.Context, from, to common.Address, value *big.Int) (common.Hash, error) {
	if len(n.transfers) == n.failAt {
		return common.Hash{}, errRejected
	}
	n.clock.Advance(n.step)
	n.transfers = append(n.transfers, transfer{from, to, value})
	return common.BigToHash(big.NewInt(int64(len(n.transfers)))), nil
}

func (n *fakeNode) PendingCount(context.Context) (int, error) {
	n.polls++
	if len(n.pendingSeq) > 0 {
		p := n.pendingSeq[0]
		if len(n.pendingSeq) > 1 {
			n.pendingSeq = n.pendingSeq[1:]
		}
		return p, nil
	}
	return len(n.transfers), nil
}

func (n *fakeNode) BlockNumber(context.Context) (uint64, error) {
	return uint64(len(n.transfers) / 2), nil
}

func accounts(k int) []common.Address {
	accs := make([]common.Address, k)
	for i := range accs {
		accs[i] = common.BigToAddress(big.NewInt(int64(0xa0 + i)))
	}
	return accs
}
