package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/processor"
	"github.com/rex-sheridan/web-transcriptor/pkg/executor"
)

type processingFlags struct {
	mode       string
	format     string
	backend    string
	title      string
	minOverlap int
	minWords   int
	chunkWords int
}

func (f *processingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", config.ModeFull, "Processing mode: minimal (captions as-is) or full (merge, refine, punctuate)")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: html, md or docx (default: from output extension)")
	cmd.Flags().StringVar(&f.backend, "backend", "", "Punctuation backend: heuristic, gemini, openai, command or none")
	cmd.Flags().StringVar(&f.title, "title", "", "Document title")
	cmd.Flags().IntVar(&f.minOverlap, "min-overlap", 0, "Minimum words of overlap for merging captions")
	cmd.Flags().IntVar(&f.minWords, "min-words", 0, "Segments shorter than this are merged into the previous one")
	cmd.Flags().IntVar(&f.chunkWords, "chunk-words", 0, "Words per sentence for the heuristic punctuation backend")
}

// apply copies explicitly set flags over the loaded configuration.
func (f *processingFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Processing.Mode = f.mode
	}
	if flags.Changed("format") {
		cfg.Processing.Format = f.format
	}
	if flags.Changed("backend") {
		cfg.Punctuation.Backend = f.backend
	}
	if flags.Changed("title") {
		cfg.Processing.Title = f.title
	}
	if flags.Changed("min-overlap") {
		cfg.Processing.MinOverlapWords = f.minOverlap
	}
	if flags.Changed("min-words") {
		cfg.Processing.MinWords = f.minWords
	}
	if flags.Changed("chunk-words") {
		cfg.Punctuation.ChunkWords = f.chunkWords
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags processingFlags

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a caption file into a transcript",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			log := ctx.newLogger(cfg)
			proc := processor.New(cfg, executor.New(), log)

			res, err := proc.Process(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transcript saved to %s\n", res.Output)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
