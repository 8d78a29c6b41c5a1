package driver

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AccountDirectory is the node's account manager.
type AccountDirectory interface {
	Accounts(ctx context.Context) ([]common.Address, error)
	UnlockAccount(ctx context.Context, account common.Address, passphrase string, duration time.Duration) error
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}

// TransactionPool accepts transfers and reports how many are waiting to be mined.
// Submit returns once the node has queued the transaction, not when it is mined.
type TransactionPool interface {
	Submit(ctx context.Context, from, to common.Address, value *big.Int) (common.Hash, error)
	PendingCount(ctx context.Context) (int, error)
}

// ChainState reports the head of the node's chain.
type ChainState interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// MiningControl starts the node's miner. Transactions are only processed once
// mining has started.
type MiningControl interface {
	StartMining(ctx context.Context, threads int) error
}
