package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	pagseguro "github.com/DanielPopoola/pagseguro-go"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(writeError(os.Stderr, err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pagseguro",
		Short: "Command line client for the PagSeguro payment service",
		Long: `Calls the PagSeguro payment service using credentials from PAGSEGURO_*
environment variables (or a .env file). Results are printed as JSON.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(authorizeCmd())
	rootCmd.AddCommand(authorizationsCmd())
	rootCmd.AddCommand(subscribeCmd())
	rootCmd.AddCommand(cancelCmd())
	rootCmd.AddCommand(planCmd())

	return rootCmd
}

// clientFactory is swapped in tests.
var clientFactory = func() (*pagseguro.Client, error) {
	cfg, err := pagseguro.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	return pagseguro.New(cfg, pagseguro.WithLogger(logger))
}

// withClient runs fn against a fresh client and prints its result.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *pagseguro.Client) (any, error)) error {
	client, err := clientFactory()
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			slog.Warn("failed to flush telemetry", "error", err)
		}
	}()

	res, err := fn(cmd.Context(), client)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
