package indexer

import (
	"context"
	"net/http"
)

// GetTokenBalance returns the current balance of address for token on blockchain.
func (c *Client) GetTokenBalance(
	ctx context.Context,
	blockchain string,
	token string,
	address string,
) (*TokenBalanceResponse, error) {
	var response TokenBalanceResponse
	if err := c.requestJSON(ctx, http.MethodGet, tokenPath(blockchain, token, address, "token-balances"), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
