package rpc

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TxPoolStatus is the result of txpool_status.
type TxPoolStatus struct {
	Pending hexutil.Uint `json:"pending"`
	Queued  hexutil.Uint `json:"queued"`
}

// TxPoolStatus returns the number of pending and queued transactions in the node's pool.
func (c *Client) TxPoolStatus(ctx context.Context) (TxPoolStatus, error) {
	var status TxPoolStatus
	if err := c.call(ctx, &status, "txpool_status"); err != nil {
		return TxPoolStatus{}, err
	}
	return status, nil
}

// PendingCount returns the number of executable transactions waiting to be mined.
func (c *Client) PendingCount(ctx context.Context) (int, error) {
	status, err := c.TxPoolStatus(ctx)
	if err != nil {
		return 0, err
	}
	return int(status.Pending), nil
}
