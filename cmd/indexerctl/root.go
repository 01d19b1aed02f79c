package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tokenindexer/indexer-sdk-go/pkg/indexer"
)

const (
	envAPIKey  = "INDEXER_API_KEY"
	envBaseURL = "INDEXER_BASE_URL"
	envTimeout = "INDEXER_TIMEOUT"
)

type rootOptions struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	envFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	options := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "indexerctl",
		Short: "Query the Token Indexer API",
		Long: `indexerctl queries token transfer history and balances from the
Token Indexer API.

Configuration is read from flags, then from the environment
(INDEXER_API_KEY, INDEXER_BASE_URL, INDEXER_TIMEOUT), then from a .env file.

Examples:
  indexerctl health
  indexerctl transfers ethereum usdc 0x1234... --limit 20
  indexerctl balance solana usdt <address>
  indexerctl batch-balances --file requests.json`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&options.apiKey, "api-key", "", "API key (default $"+envAPIKey+")")
	rootCmd.PersistentFlags().StringVar(&options.baseURL, "base-url", "", "API base URL (default $"+envBaseURL+")")
	rootCmd.PersistentFlags().DurationVar(&options.timeout, "timeout", 0, "request timeout (default $"+envTimeout+" or 30s)")
	rootCmd.PersistentFlags().StringVar(&options.envFile, "env-file", ".env", "dotenv file to load")
	rootCmd.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(
		newHealthCmd(options),
		newTransfersCmd(options),
		newBalanceCmd(options),
		newBatchTransfersCmd(options),
		newBatchBalancesCmd(options),
		newChainsCmd(),
		newTokensCmd(),
	)
	return rootCmd
}

// client builds an indexer client from flags, environment and the dotenv file.
func (o *rootOptions) client() (*indexer.Client, error) {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", o.envFile, err)
		}
	}

	apiKey := firstNonEmpty(o.apiKey, os.Getenv(envAPIKey))
	baseURL := firstNonEmpty(o.baseURL, os.Getenv(envBaseURL))

	timeout := o.timeout
	if timeout <= 0 {
		if raw := strings.TrimSpace(os.Getenv(envTimeout)); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", envTimeout, err)
			}
			timeout = parsed
		}
	}

	logger := zap.NewNop()
	if o.verbose {
		development, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
		logger = development
	}

	return indexer.NewClient(indexer.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: timeout,
		Logger:  logger,
	})
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
