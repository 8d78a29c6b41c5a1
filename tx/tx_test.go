package tx_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/b-harvest/txdriver/client"
	"github.com/b-harvest/txdriver/client/rpc"
	"github.com/b-harvest/txdriver/client/rpc/rpctest"
	"github.com/b-harvest/txdriver/driver"
	"github.com/b-harvest/txdriver/tx"
)

var _ driver.TransactionPool = (*tx.Transaction)(nil)

func newTransaction(t *testing.T, gasLimit uint64, gasPrice *big.Int) (*rpctest.Node, *tx.Transaction) {
	t.Helper()
	node := rpctest.NewNode("", rpctest.Accounts(2)...)
	c := &client.Client{RPC: rpc.NewClientFrom(node.Dial(), 5*time.Second)}
	t.Cleanup(func() {
		_ = c.Stop()
		node.Stop()
	})
	return node, tx.NewTransaction(c, gasLimit, gasPrice)
}

func TestArgs(t *testing.T) {
	accs := rpctest.Accounts(2)

	plain := tx.NewTransaction(nil, 0, nil).Args(accs[0], accs[1], big.NewInt(5))
	require.Nil(t, plain.Gas)
	require.Nil(t, plain.GasPrice)

	withGas := tx.NewTransaction(nil, 21000, big.NewInt(7)).Args(accs[0], accs[1], big.NewInt(5))
	require.EqualValues(t, 21000, *withGas.Gas)
	require.Equal(t, int64(7), withGas.GasPrice.ToInt().Int64())
	require.Equal(t, int64(5), withGas.Value.ToInt().Int64())
}

func TestSubmit(t *testing.T) {
	node, transaction := newTransaction(t, 21000, nil)
	ctx := context.Background()
	accs := rpctest.Accounts(2)

	_, err := transaction.Submit(ctx, accs[0], accs[1], big.NewInt(1))
	require.ErrorContains(t, err, "authentication needed")

	require.NoError(t, transaction.Client.RPC.UnlockAccount(ctx, accs[0], "", 0))
	_, err = transaction.Submit(ctx, accs[0], accs[1], big.NewInt(1))
	require.NoError(t, err)

	sent := node.Sent()
	require.Len(t, sent, 1)
	require.EqualValues(t, 21000, *sent[0].Gas)

	pending, err := transaction.PendingCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, pending)
}
