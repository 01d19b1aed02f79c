package indexer

import (
	"context"
	"net/http"
)

const (
	batchTransfersPath = "/api/v1/batch/token-transfers"
	batchBalancesPath  = "/api/v1/batch/token-balances"
)

// GetBatchTokenTransfers fetches several transfer histories in one call.
// Item i of the result answers requests[i]; a failed slot is returned as an
// error payload inside the slice, not as an error.
func (c *Client) GetBatchTokenTransfers(
	ctx context.Context,
	requests []BatchTokenTransfersRequestItem,
) ([]BatchTokenTransfersItem, error) {
	if requests == nil {
		requests = []BatchTokenTransfersRequestItem{}
	}
	var response []BatchTokenTransfersItem
	if err := c.requestJSON(ctx, http.MethodPost, batchTransfersPath, nil, requests, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetBatchTokenBalances fetches several balances in one call, with the same
// ordering contract as GetBatchTokenTransfers.
func (c *Client) GetBatchTokenBalances(
	ctx context.Context,
	requests []BatchTokenBalanceRequestItem,
) ([]BatchTokenBalanceItem, error) {
	if requests == nil {
		requests = []BatchTokenBalanceRequestItem{}
	}
	var response []BatchTokenBalanceItem
	if err := c.requestJSON(ctx, http.MethodPost, batchBalancesPath, nil, requests, &response); err != nil {
		return nil, err
	}
	return response, nil
}
