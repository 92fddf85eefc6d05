package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/rex-sheridan/web-transcriptor/internal/caption"
	"github.com/rex-sheridan/web-transcriptor/internal/logger"
	"github.com/rex-sheridan/web-transcriptor/internal/processor"
	"github.com/rex-sheridan/web-transcriptor/internal/segment"
	"github.com/rex-sheridan/web-transcriptor/pkg/executor"
)

const inspectTextWidth = 80

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var flags processingFlags

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Show the merged and refined segments of a caption file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			proc := processor.New(cfg, executor.New(), logger.NewNop())
			segments, err := proc.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSegmentTable(segments))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func renderSegmentTable(segments []segment.Segment) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"#", "Start", "End", "Words", "Text"})
	for i, s := range segments {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			caption.FormatTimestamp(s.Start),
			caption.FormatTimestamp(s.End),
			strconv.Itoa(s.WordCount()),
			s.Text,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, WidthMax: inspectTextWidth},
	})
	tw.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d segments", len(segments))})
	return tw.Render()
}
