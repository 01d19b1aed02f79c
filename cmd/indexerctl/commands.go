package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tokenindexer/indexer-sdk-go/pkg/indexer"
)

func newHealthCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the API health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := options.client()
			if err != nil {
				return err
			}
			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), health)
		},
	}
}

func newTransfersCmd(options *rootOptions) *cobra.Command {
	var limit, fromTs, toTs int64
	var showTotal bool

	cmd := &cobra.Command{
		Use:   "transfers <blockchain> <token> <address>",
		Short: "List token transfers for an address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := options.client()
			if err != nil {
				return err
			}

			query := &indexer.TransferQueryOptions{}
			if cmd.Flags().Changed("limit") {
				query.Limit = indexer.Int64(limit)
			}
			if cmd.Flags().Changed("from") {
				query.FromTs = indexer.Int64(fromTs)
			}
			if cmd.Flags().Changed("to") {
				query.ToTs = indexer.Int64(toTs)
			}

			response, err := client.GetTokenTransfers(cmd.Context(), args[0], args[1], args[2], query)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), response); err != nil {
				return err
			}
			if showTotal {
				total, err := indexer.SumAmounts(response.Transfers)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s across %d transfers\n",
					color.CyanString("total:"), total.String(), len(response.Transfers))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", 0, "maximum number of transfers")
	cmd.Flags().Int64Var(&fromTs, "from", 0, "unix timestamp lower bound")
	cmd.Flags().Int64Var(&toTs, "to", 0, "unix timestamp upper bound")
	cmd.Flags().BoolVar(&showTotal, "total", false, "print the summed amount to stderr")
	return cmd
}

func newBalanceCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <blockchain> <token> <address>",
		Short: "Show the token balance of an address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := options.client()
			if err != nil {
				return err
			}
			response, err := client.GetTokenBalance(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response)
		},
	}
}

func newBatchTransfersCmd(options *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch-transfers",
		Short: "Fetch transfers for several addresses in one call",
		Long:  "Reads a JSON array of {blockchain, token, address, limit?, fromTs?, toTs?} from --file or stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var requests []indexer.BatchTokenTransfersRequestItem
			if err := readRequests(cmd.InOrStdin(), file, &requests); err != nil {
				return err
			}
			client, err := options.client()
			if err != nil {
				return err
			}
			items, err := client.GetBatchTokenTransfers(cmd.Context(), requests)
			if err != nil {
				return err
			}
			for index, item := range items {
				reportSlot(cmd.ErrOrStderr(), index, item)
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (default stdin)")
	return cmd
}

func newBatchBalancesCmd(options *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch-balances",
		Short: "Fetch balances for several addresses in one call",
		Long:  "Reads a JSON array of {blockchain, token, address} from --file or stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var requests []indexer.BatchTokenBalanceRequestItem
			if err := readRequests(cmd.InOrStdin(), file, &requests); err != nil {
				return err
			}
			client, err := options.client()
			if err != nil {
				return err
			}
			items, err := client.GetBatchTokenBalances(cmd.Context(), requests)
			if err != nil {
				return err
			}
			for index, item := range items {
				reportSlot(cmd.ErrOrStderr(), index, item)
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (default stdin)")
	return cmd
}

func newChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List supported blockchains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, blockchain := range indexer.Blockchains() {
				fmt.Fprintln(cmd.OutOrStdout(), blockchain)
			}
			return nil
		},
	}
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List supported tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range indexer.Tokens() {
				fmt.Fprintln(cmd.OutOrStdout(), token)
			}
			return nil
		},
	}
}

func readRequests(stdin io.Reader, file string, target any) error {
	reader := stdin
	if file != "" && file != "-" {
		opened, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open request file: %w", err)
		}
		defer opened.Close()
		reader = opened
	}
	if err := json.NewDecoder(reader).Decode(target); err != nil {
		return fmt.Errorf("failed to decode batch requests: %w", err)
	}
	return nil
}

func reportSlot(out io.Writer, index int, item any) {
	if indexer.IsAPIError(item) {
		var payload indexer.APIErrorPayload
		if raw, err := json.Marshal(item); err == nil {
			_ = json.Unmarshal(raw, &payload)
		}
		fmt.Fprintf(out, "[%d] %s %s: %s\n", index, color.RedString("error"), payload.Error, payload.Message)
		return
	}
	fmt.Fprintf(out, "[%d] %s\n", index, color.GreenString("ok"))
}

func printJSON(out io.Writer, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}
