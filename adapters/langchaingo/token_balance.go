package langchaingo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/tools"
	"github.com/tokenindexer/indexer-sdk-go/pkg/indexer"
)

// TokenBalanceTool is a langchaingo compatible Tool that lets an agent look
// up the token balance of an address through the Token Indexer API.
type TokenBalanceTool struct {
	client    *indexer.Client
	Callbacks callbacks.Handler
}

var _ tools.Tool = &TokenBalanceTool{}

// NewTokenBalanceTool creates a new langchaingo tool backed by client.
func NewTokenBalanceTool(client *indexer.Client) *TokenBalanceTool {
	return &TokenBalanceTool{client: client}
}

func (t *TokenBalanceTool) Name() string {
	return "Token_Indexer_Balance"
}

func (t *TokenBalanceTool) Description() string {
	return fmt.Sprintf(`Returns the current token balance of a wallet address as JSON.
Input must be three space separated values: "<blockchain> <token> <address>".
Supported blockchains: %s. Supported tokens: %s.`,
		strings.Join(indexer.Blockchains(), ", "),
		strings.Join(indexer.Tokens(), ", "),
	)
}

// Call looks up the balance described by input. Lookup failures are returned
// as text so the agent can react to them.
func (t *TokenBalanceTool) Call(ctx context.Context, input string) (string, error) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolStart(ctx, input)
	}

	fields := strings.Fields(input)
	if len(fields) != 3 {
		output := `Invalid input: expected "<blockchain> <token> <address>"`
		if t.Callbacks != nil {
			t.Callbacks.HandleToolEnd(ctx, output)
		}
		return output, nil
	}

	if t.client == nil {
		err := errors.New("client is not configured")
		if t.Callbacks != nil {
			t.Callbacks.HandleToolError(ctx, err)
		}
		return fmt.Sprintf("Failed to fetch token balance: %v", err), nil
	}

	response, err := t.client.GetTokenBalance(ctx, strings.ToLower(fields[0]), strings.ToLower(fields[1]), fields[2])
	if err != nil {
		if t.Callbacks != nil {
			t.Callbacks.HandleToolError(ctx, err)
		}
		return fmt.Sprintf("Failed to fetch token balance: %v", err), nil
	}

	jsonData, err := json.MarshalIndent(response.TokenBalance, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode balance to JSON: %w", err)
	}

	output := string(jsonData)

	if t.Callbacks != nil {
		t.Callbacks.HandleToolEnd(ctx, output)
	}

	return output, nil
}
