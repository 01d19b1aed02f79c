// The Token Indexer SDK for Go is a typed client for the Token Indexer REST
// API, which serves token transfer history and balances for wallet addresses
// across several blockchains.
//
// # Packages
//
//   - pkg/indexer: the API client, its error types and the batch result classifiers.
//   - cmd/indexerctl: a command line front end for every API operation.
//   - adapters/langchaingo: a langchaingo tool for balance lookups (separate module).
//
// # Installation
//
//	go get github.com/tokenindexer/indexer-sdk-go@latest
package indexer_sdk_go
