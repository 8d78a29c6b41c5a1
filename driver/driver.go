package driver

import (
	"context"
	"iter"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"
)

// SubmissionLog describes one accepted transfer.
type SubmissionLog struct {
	Index           int
	From            common.Address
	To              common.Address
	BlockHeight     uint64
	PendingPoolSize int
	TxPerSecond     int
	TxHash          common.Hash
}

// HashPrefix returns the leading hex digits of the transaction hash.
func (l SubmissionLog) HashPrefix() string {
	return l.TxHash.Hex()[:10]
}

// Option configures a Driver.
type Option func(*Driver)

// WithRateLimit paces submissions to at most perSecond transactions per second.
// Zero or negative means unpaced.
func WithRateLimit(perSecond float64) Option {
	return func(d *Driver) {
		if perSecond > 0 {
			d.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithClock replaces the wall clock used for throughput windows.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// Driver submits transfers round-robin between node-managed accounts.
type Driver struct {
	pool    TransactionPool
	chain   ChainState
	limiter *rate.Limiter
	now     func() time.Time
}

// NewDriver returns a Driver submitting through pool and reading heights from chain.
func NewDriver(pool TransactionPool, chain ChainState, opts ...Option) *Driver {
	d := &Driver{
		pool:  pool,
		chain: chain,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Pair returns the sender and recipient used at iteration i.
// The recipient is the next account, wrapping to the first after the last.
func Pair(accounts []common.Address, i int) (from, to common.Address) {
	k := len(accounts)
	return accounts[i%k], accounts[(i+1)%k]
}

// Run submits n transfers of value wei and yields one log per accepted transfer.
// Submissions are issued one at a time in index order. The first failure is
// yielded as an error and ends the sequence. The sequence can be ranged over once.
func (d *Driver) Run(ctx context.Context, n int, accounts []common.Address, value *big.Int) iter.Seq2[SubmissionLog, error] {
	consumed := false
	return func(yield func(SubmissionLog, error) bool) {
		if consumed {
			yield(SubmissionLog{}, ErrSequenceConsumed)
			return
		}
		consumed = true

		if err := ValidateRun(n, accounts, value); err != nil {
			yield(SubmissionLog{}, err)
			return
		}

		counter := NewThroughputCounter(d.now)
		for i := 0; i < n; i++ {
			rec, err := d.submit(ctx, i, accounts, value, counter)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (d *Driver) submit(ctx context.Context, i int, accounts []common.Address, value *big.Int, counter *ThroughputCounter) (SubmissionLog, error) {
	if err := ctx.Err(); err != nil {
		return SubmissionLog{}, err
	}
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return SubmissionLog{}, err
		}
	}

	from, to := Pair(accounts, i)
	hash, err := d.pool.Submit(ctx, from, to, value)
	if err != nil {
		return SubmissionLog{}, &SubmissionError{Index: i, From: from, To: to, Err: err}
	}
	counter.Inc()

	pending, err := d.pool.PendingCount(ctx)
	if err != nil {
		return SubmissionLog{}, err
	}
	height, err := d.chain.BlockNumber(ctx)
	if err != nil {
		return SubmissionLog{}, err
	}

	return SubmissionLog{
		Index:           i,
		From:            from,
		To:              to,
		BlockHeight:     height,
		PendingPoolSize: pending,
		TxPerSecond:     counter.Roll(),
		TxHash:          hash,
	}, nil
}

// ValidateRun reports ErrInvalidConfiguration when Run could not submit n transfers
// of value between accounts.
func ValidateRun(n int, accounts []common.Address, value *big.Int) error {
	switch {
	case n < 0:
		return invalidConfig("negative tx count %d", n)
	case len(accounts) < 2:
		return invalidConfig("need at least 2 accounts, have %d", len(accounts))
	case value == nil || value.Sign() <= 0:
		return invalidConfig("transfer amount must be positive")
	}
	return nil
}
