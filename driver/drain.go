package driver

import (
	"context"
	"time"
)

// WaitForEmptyPool polls the pool every interval until no transaction is pending.
// Every poll that still finds pending transactions calls report, which may be nil.
func WaitForEmptyPool(ctx context.Context, pool TransactionPool, interval time.Duration, report func(pending int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		pending, err := pool.PendingCount(ctx)
		if err != nil {
			return err
		}
		if pending == 0 {
			return nil
		}
		if report != nil {
			report(pending)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
