package rpc

import "context"

// StartMining starts the node's miner. threads is only sent when positive,
// since newer nodes take no argument.
func (c *Client) StartMining(ctx context.Context, threads int) error {
	if threads > 0 {
		return c.call(ctx, nil, "miner_start", threads)
	}
	return c.call(ctx, nil, "miner_start")
}

// StopMining stops the node's miner.
func (c *Client) StopMining(ctx context.Context) error {
	return c.call(ctx, nil, "miner_stop")
}
