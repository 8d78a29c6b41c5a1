package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/b-harvest/txdriver/codec"
)

// Accounts returns the accounts managed by the node, in the node's order.
func (c *Client) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := c.call(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// BlockNumber returns the current head height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	return c.eth.BlockNumber(ctx)
}

// BalanceAt returns the latest balance of account in wei.
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	return c.eth.BalanceAt(ctx, account, nil)
}

// SendTransaction asks the node to sign and queue a transaction from one of its unlocked accounts.
func (c *Client) SendTransaction(ctx context.Context, args codec.TransferArgs) (common.Hash, error) {
	var hash common.Hash
	if err := c.call(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}
