// Package main provides the CLI entry point for plotlog.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/plotlog-go/internal/config"
	"github.com/ukaji3/plotlog-go/internal/logger"
	"github.com/ukaji3/plotlog-go/pkg/plotlog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plotlog <criterion_output_dir>",
		Short: "Convert benchmark SVG plots to log scale when appropriate",
		Long: `plotlog post-processes Criterion SVG plots. Plots whose numeric labels
span two or more orders of magnitude get a "(log scale)" title annotation
and are written next to the original with a suffix, e.g. pdf_log.svg.`,
		Example: "  plotlog ../target/criterion",
		Args:    cobra.ExactArgs(1),
		RunE:    run,
	}
	config.RegisterFlags(rootCmd.Flags())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	dir := args[0]
	cmd.SilenceUsage = true

	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return err
	}

	log, closer, err := logger.New(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := cfg.Options()
	opts.Logger = log

	summary, err := plotlog.ProcessDir(cmd.Context(), dir, opts)
	switch {
	case errors.Is(err, plotlog.ErrNoFiles):
		log.Warn().Str("dir", dir).Msg("no SVG files found")
		fmt.Fprintf(cmd.OutOrStdout(), "No SVG files found in %s\n", dir)
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case err != nil:
		return err
	}

	// Report what was done even when interrupted.
	fmt.Fprintf(cmd.OutOrStdout(), "\nProcessed %d files, converted %d to log scale\n",
		summary.Examined, summary.Converted)
	if summary.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d files failed\n", summary.Failed)
	}
	return err
}
