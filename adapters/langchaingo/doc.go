// Package langchaingo provides Token Indexer tools for the tmc/langchaingo
// AI agent framework.
//
// # Available Tools
//
//   - TokenBalanceTool: looks up the token balance of an address.
//
// # Usage
//
//	client, _ := indexer.NewClient(indexer.Config{APIKey: os.Getenv("INDEXER_API_KEY")})
//	balanceTool := langchaingo.NewTokenBalanceTool(client)
//	agent := agents.NewOneShotAgent(llm, []tools.Tool{balanceTool})
//
// Langchaingo: https://github.com/tmc/langchaingo
package langchaingo
