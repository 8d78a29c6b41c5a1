package driver_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/b-harvest/txdriver/driver"
)

func TestUnlockAll(t *testing.T) {
	node := newFakeNode()
	u := driver.NewUnlocker(node, driver.WithUnlockDuration(time.Minute))
	accs := accounts(3)

	var logs []driver.UnlockLog
	for rec, err := range u.UnlockAll(context.Background(), accs, "") {
		require.NoError(t, err)
		logs = append(logs, rec)
	}

	require.Equal(t, accs, node.unlocked)
	require.Equal(t, []string{"", "", ""}, node.passphrases)
	require.Equal(t, []time.Duration{time.Minute, time.Minute, time.Minute}, node.durations)
	require.Len(t, logs, 3)
	for i, rec := range logs {
		require.Equal(t, i, rec.Index)
		require.Equal(t, accs[i], rec.Account)
		require.Nil(t, rec.Balance)
	}
}

func TestUnlockAllWithBalances(t *testing.T) {
	node := newFakeNode()
	accs := accounts(2)
	node.balances[accs[1]] = big.NewInt(42)
	u := driver.NewUnlocker(node, driver.WithBalances())

	var balances []*big.Int
	for rec, err := range u.UnlockAll(context.Background(), accs, "secret") {
		require.NoError(t, err)
		balances = append(balances, rec.Balance)
	}
	require.Equal(t, []*big.Int{big.NewInt(0), big.NewInt(42)}, balances)
	require.Equal(t, []string{"secret", "secret"}, node.passphrases)
}

func TestUnlockAllEmpty(t *testing.T) {
	node := newFakeNode()
	u := driver.NewUnlocker(node)

	calls := 0
	for range u.UnlockAll(context.Background(), nil, "") {
		calls++
	}
	require.Zero(t, calls)
	require.Empty(t, node.unlocked)
}

func TestUnlockAllHaltsOnFailure(t *testing.T) {
	node := newFakeNode()
	node.unlockErrAt = 1
	u := driver.NewUnlocker(node)
	accs := accounts(3)

	var (
		logs    []driver.UnlockLog
		lastErr error
	)
	for rec, err := range u.UnlockAll(context.Background(), accs, "wrong") {
		if err != nil {
			lastErr = err
			break
		}
		logs = append(logs, rec)
	}

	require.Len(t, logs, 1)
	require.Len(t, node.unlocked, 1)

	var unlockErr *driver.UnlockError
	require.True(t, errors.As(lastErr, &unlockErr))
	require.Equal(t, 1, unlockErr.Index)
	require.Equal(t, accs[1], unlockErr.Account)
	require.EqualError(t, unlockErr.Unwrap(), "could not decrypt key with given password")
}

func TestUnlockAllIsNotRestartable(t *testing.T) {
	node := newFakeNode()
	seq := driver.NewUnlocker(node).UnlockAll(context.Background(), accounts(2), "")

	for range seq {
	}
	for _, err := range seq {
		require.ErrorIs(t, err, driver.ErrSequenceConsumed)
	}
	require.Len(t, node.unlocked, 2)
}
