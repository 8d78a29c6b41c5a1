package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Client talks JSON-RPC to a single Ethereum node.
type Client struct {
	rpc     *ethrpc.Client
	eth     *ethclient.Client
	timeout time.Duration
}

// NewClient dials the node at rpcURL. Each call is bounded by timeout seconds.
func NewClient(rpcURL string, timeout int64) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	c, err := ethrpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}
	return NewClientFrom(c, time.Duration(timeout)*time.Second), nil
}

// NewClientFrom wraps an already connected rpc client.
func NewClientFrom(c *ethrpc.Client, timeout time.Duration) *Client {
	return &Client{
		rpc:     c,
		eth:     ethclient.NewClient(c),
		timeout: timeout,
	}
}

// Close closes the connection to the node.
func (c *Client) Close() {
	c.rpc.Close()
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	return c.rpc.CallContext(ctx, result, method, args...)
}
