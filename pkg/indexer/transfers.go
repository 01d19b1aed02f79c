package indexer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetTokenTransfers returns the transfer history of address for token on
// blockchain. Options left nil are not sent; the server applies its defaults.
func (c *Client) GetTokenTransfers(
	ctx context.Context,
	blockchain string,
	token string,
	address string,
	options *TransferQueryOptions,
) (*TokenTransfersResponse, error) {
	query := url.Values{}
	if options != nil {
		addQueryInt(query, "limit", options.Limit)
		addQueryInt(query, "fromTs", options.FromTs)
		addQueryInt(query, "toTs", options.ToTs)
	}

	var response TokenTransfersResponse
	if err := c.requestJSON(ctx, http.MethodGet, tokenPath(blockchain, token, address, "token-transfers"), query, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func tokenPath(blockchain string, token string, address string, resource string) string {
	return fmt.Sprintf(
		"/api/v1/%s/%s/%s/%s",
		percentPath(blockchain),
		percentPath(token),
		percentPath(address),
		resource,
	)
}
