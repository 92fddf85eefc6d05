package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/processor"
	"github.com/rex-sheridan/web-transcriptor/internal/render"
	"github.com/rex-sheridan/web-transcriptor/internal/watcher"
	"github.com/rex-sheridan/web-transcriptor/pkg/executor"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var flags processingFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Convert caption files as they appear in paths.input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			return runWatch(cmd.Context(), cfg, ctx)
		},
	}
	flags.register(cmd)

	return cmd
}

func runWatch(parent context.Context, cfg *config.Config, cc *commandContext) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := cc.newLogger(cfg)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	format := cfg.Processing.Format
	if format == "" {
		format = render.FormatHTML
	}

	proc := processor.New(cfg, executor.New(), log)
	handle := func(ctx context.Context, inputPath string) error {
		outputPath, err := processor.OutputPath(inputPath, cfg.Paths.Output, format)
		if err != nil {
			return err
		}
		_, err = proc.Process(ctx, inputPath, outputPath)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handle, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s (%s, %s mode, punctuation: %s)",
		cfg.Paths.Output, format, cfg.Processing.Mode, cfg.Punctuation.Backend)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}
	log.Info(context.Background(), "Watcher stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
