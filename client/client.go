package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/b-harvest/txdriver/client/rpc"
	"github.com/b-harvest/txdriver/config"
)

// Client is a session with one Ethereum node. Create it with NewClient and
// release it with Stop.
type Client struct {
	RPC *rpc.Client
}

// NewClient creates a new Client connected to rpcURL.
func NewClient(rpcURL string, timeout int64) (*Client, error) {
	if timeout <= 0 {
		timeout = config.DefaultRPCTimeout
	}
	rpcClient, err := rpc.NewClient(rpcURL, timeout)
	if err != nil {
		return &Client{}, err
	}

	return &Client{
		RPC: rpcClient,
	}, nil
}

// GetRPCClient returns RPC client.
func (c *Client) GetRPCClient() *rpc.Client {
	return c.RPC
}

// ManagedAccounts returns the node's accounts. When only is non-empty, it returns
// only those accounts, in the given order, after checking the node manages every one.
func (c *Client) ManagedAccounts(ctx context.Context, only []common.Address) ([]common.Address, error) {
	accounts, err := c.RPC.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	if len(only) == 0 {
		return accounts, nil
	}

	managed := make(map[common.Address]bool, len(accounts))
	for _, acc := range accounts {
		managed[acc] = true
	}
	for _, acc := range only {
		if !managed[acc] {
			return nil, fmt.Errorf("account %s is not managed by the node", acc.Hex())
		}
	}
	return only, nil
}

// Stop closes the connection to the node.
func (c Client) Stop() error {
	if c.RPC != nil {
		c.RPC.Close()
	}
	return nil
}
