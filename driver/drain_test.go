package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/b-harvest/txdriver/driver"
)

func TestWaitForEmptyPool(t *testing.T) {
	node := newFakeNode()
	node.pendingSeq = []int{5, 2, 0}

	var seen []int
	err := driver.WaitForEmptyPool(context.Background(), node, time.Millisecond, func(pending int) {
		seen = append(seen, pending)
	})
	require.NoError(t, err)
	require.Equal(t, []int{5, 2}, seen)
	require.Equal(t, 3, node.polls)
}

func TestWaitForEmptyPoolCanceled(t *testing.T) {
	node := newFakeNode()
	node.pendingSeq = []int{1}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := driver.WaitForEmptyPool(ctx, node, 5*time.Millisecond, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
