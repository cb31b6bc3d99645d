package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/adapter/http/middleware"
	"github.com/iho/matchedbet/internal/domain"
)

type options struct {
	baseURL string
	timeout time.Duration
	retries int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "matchedbet-cli",
		Short:         "Matched betting ledger CLI",
		Long:          `A command line interface for the matched betting balance ledger API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().IntVar(&opts.retries, "retries", 2, "Retries on 5xx and 429 responses")

	rootCmd.AddCommand(
		balancesCmd(opts),
		betsCmd(opts),
		accumulatorsCmd(opts),
		bookmakersCmd(opts),
	)

	return rootCmd
}

func newClient(opts *options) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimSuffix(opts.baseURL, "/")).
		SetTimeout(opts.timeout).
		SetRetryCount(opts.retries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= 500 || resp.StatusCode() == 429
		}).
		SetHeader("Accept", "application/json")
}

func balancesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Session balance operations",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out dto.BalancesResponse
			if err := do(newClient(opts).R().SetResult(&out), "GET", "/api/v1/balances"); err != nil {
				return err
			}
			printBalances(cmd.OutOrStdout(), &out)
			return nil
		},
	}

	var (
		amount string
		target string
	)
	increment := &cobra.Command{
		Use:   "increment",
		Short: "Add an amount to one balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			t, err := domain.ParseBalanceTarget(target)
			if err != nil {
				return err
			}

			body := dto.IncrementBalancesRequest{Increments: []dto.IncrementRequest{{Amount: value, Target: t}}}
			var out dto.BalancesResponse
			req := newClient(opts).R().
				SetHeader(middleware.IdempotencyKeyHeader, ulid.Make().String()).
				SetBody(body).
				SetResult(&out)
			if err := do(req, "POST", "/api/v1/balances/increments"); err != nil {
				return err
			}
			printBalances(cmd.OutOrStdout(), &out)
			return nil
		},
	}
	increment.Flags().StringVar(&amount, "amount", "", "Amount to add, may be negative")
	increment.Flags().StringVar(&target, "target", "", "Balance to change: exchange, bookmaker or profit")
	_ = increment.MarkFlagRequired("amount")
	_ = increment.MarkFlagRequired("target")

	cmd.AddCommand(show, increment)
	return cmd
}

func betsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bets",
		Short: "Bet operations",
	}
	cmd.AddCommand(settleCmd(opts, "/api/v1/bets/%s/settle", "Settle a single bet against its match result"))
	return cmd
}

func accumulatorsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accumulators",
		Short: "Accumulator operations",
	}
	cmd.AddCommand(settleCmd(opts, "/api/v1/accumulators/%s/settle", "Settle an accumulator against its legs' results"))
	return cmd
}

func settleCmd(opts *options, pathFormat, short string) *cobra.Command {
	return &cobra.Command{
		Use:   "settle <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out dto.SettlementResponse
			req := newClient(opts).R().
				SetHeader(middleware.IdempotencyKeyHeader, ulid.Make().String()).
				SetResult(&out)
			if err := do(req, "POST", fmt.Sprintf(pathFormat, args[0])); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Settled %s %s (%s): winner %s\n", strings.ToLower(out.Type), out.SubjectID, out.Category, out.Winner)
			fmt.Fprintf(w, "  bookmaker %s  exchange %s  profit %s\n", out.Bookmaker, out.Exchange, out.Profit)
			if out.Balances != nil {
				printBalances(w, out.Balances)
			}
			return nil
		},
	}
}

func bookmakersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmakers",
		Short: "Bookmaker operations",
	}

	var (
		limit  int
		offset int
		asJSON bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List bookmakers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out dto.ListBookmakersResponse
			req := newClient(opts).R().
				SetQueryParam("limit", fmt.Sprint(limit)).
				SetQueryParam("offset", fmt.Sprint(offset)).
				SetResult(&out)
			if err := do(req, "GET", "/api/v1/bookmakers"); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return printJSON(w, out)
			}
			fmt.Fprintf(w, "%-26s  %-20s  %s\n", "ID", "NAME", "URL")
			for _, b := range out.Bookmakers {
				fmt.Fprintf(w, "%-26s  %-20s  %s\n", b.ID, truncate(b.Name, 20), b.URL)
			}
			fmt.Fprintf(w, "%d of %d bookmakers\n", len(out.Bookmakers), out.Total)
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "Page size")
	list.Flags().IntVar(&offset, "offset", 0, "Page offset")
	list.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	cmd.AddCommand(list)
	return cmd
}

// do executes req and turns non-2xx responses into errors carrying the
// server's message.
func do(req *resty.Request, method, path string) error {
	resp, err := req.SetError(&dto.ErrorResponse{}).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*dto.ErrorResponse); ok && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("%s %s: %d %s: %s", method, path, resp.StatusCode(), apiErr.Error, apiErr.Message)
			}
			return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode(), apiErr.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status())
	}
	return nil
}

func printBalances(w io.Writer, b *dto.BalancesResponse) {
	fmt.Fprintf(w, "Exchange:  %s\n", b.ExchangeBalance.StringFixed(2))
	fmt.Fprintf(w, "Bookmaker: %s\n", b.BookmakerBalance.StringFixed(2))
	fmt.Fprintf(w, "Profit:    %s\n", b.Profit.StringFixed(2))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
