// Package indexer provides a typed client for the Token Indexer REST API.
// It covers the health check, token transfer history, token balances and the
// batched variants of both.
//
// # Getting Started
//
//	client, err := indexer.NewClient(indexer.Config{
//		APIKey: "<indexer-api-key>",
//	})
//
//	transfers, err := client.GetTokenTransfers(ctx, indexer.BlockchainEthereum,
//		indexer.TokenUSDC, "0x...", &indexer.TransferQueryOptions{
//			Limit: indexer.Int64(50),
//		})
//
// # Errors
//
// Every failure returned by a Client method is one of *ConfigurationError,
// *APIError, *TimeoutError or *NetworkError. IsSDKError matches all four.
//
// Batch calls do not fail because one slot failed. Each slot is classified by
// the keys it carries: IsAPIError, IsTokenTransfersResponse and
// IsTokenBalanceResponse work on raw JSON, decoded maps and batch items.
//
//	items, err := client.GetBatchTokenBalances(ctx, requests)
//	for i, item := range items {
//		if payload, failed := item.APIError(); failed {
//			log.Printf("slot %d: %s", i, payload.Message)
//			continue
//		}
//		balance, _ := item.Balance()
//		fmt.Println(balance.Amount)
//	}
//
// This package is part of the Token Indexer SDK for Go.
package indexer
