package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agdealers8/learn-and-conquer/internal/export"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSummarizeCommand() *cobra.Command {
	var language, grade, syllabus string
	var topic string
	var pdf bool

	command := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize a text file, or stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := newGeminiClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			var text []byte
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
				}
			} else {
				text, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("io.ReadAll(stdin) > %w", err)
				}
			}
			if len(text) == 0 {
				return fmt.Errorf("nothing to summarize")
			}

			summary, err := client.Summarize(context.Background(), string(text), oneShotProfile(language, grade, syllabus))
			if err != nil {
				return fmt.Errorf("Summarize() > %w", err)
			}
			fmt.Println(summary)

			if pdf {
				path, err := export.WriteSummaryMarkdown(cfg.Outputs.ExportDirectory, topic, summary)
				if err != nil {
					return fmt.Errorf("export.WriteSummaryMarkdown() > %w", err)
				}
				path, err = export.ConvertMarkdownToPDF(path)
				if err != nil {
					return fmt.Errorf("export.ConvertMarkdownToPDF() > %w", err)
				}
				color.Green("Saved %s", path)
			}
			return nil
		},
	}

	command.Flags().StringVar(&language, "language", "", "Answer language (default English)")
	command.Flags().StringVar(&grade, "grade", "", "Study level, e.g. High School")
	command.Flags().StringVar(&syllabus, "syllabus", "", "Syllabus or curriculum to follow")
	command.Flags().StringVar(&topic, "topic", "Summary", "Title for the exported study sheet")
	command.Flags().BoolVar(&pdf, "pdf", false, "Also export the summary as a PDF study sheet")

	return command
}
