package tx

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/b-harvest/txdriver/client"
	"github.com/b-harvest/txdriver/codec"
)

// Transaction is an object that has common fields when submitting transfers.
// Signing is left to the node, which holds the keys of its unlocked accounts.
type Transaction struct {
	Client   *client.Client `json:"client"`
	GasLimit uint64         `json:"gas_limit"`
	GasPrice *big.Int       `json:"gas_price"`
}

// NewTransaction returns new Transaction object. Zero gas settings let the node pick them.
func NewTransaction(client *client.Client, gasLimit uint64, gasPrice *big.Int) *Transaction {
	return &Transaction{
		Client:   client,
		GasLimit: gasLimit,
		GasPrice: gasPrice,
	}
}

// Args builds the eth_sendTransaction arguments of a value transfer.
func (t *Transaction) Args(from, to common.Address, value *big.Int) codec.TransferArgs {
	return codec.NewTransferArgs(from, to, value).WithGas(t.GasLimit, t.GasPrice)
}

// Submit hands a value transfer to the node and returns its hash once the node has queued it.
func (t *Transaction) Submit(ctx context.Context, from, to common.Address, value *big.Int) (common.Hash, error) {
	hash, err := t.Client.RPC.SendTransaction(ctx, t.Args(from, to, value))
	if err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// PendingCount returns the number of transactions the node has queued but not mined.
func (t *Transaction) PendingCount(ctx context.Context) (int, error) {
	n, err := t.Client.RPC.PendingCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("get txpool status: %w", err)
	}
	return n, nil
}
