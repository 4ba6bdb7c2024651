package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPlanCommand() *cobra.Command {
	var language, grade, syllabus string

	command := &cobra.Command{
		Use:   "plan [description of your day]",
		Short: "Turn a freeform description of your day into a study schedule",
		Args:  cobra.MinimumNArgs(1),
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

			freeform := strings.Join(args, " ")
			sessions, err := client.GenerateSchedule(context.Background(), freeform, oneShotProfile(language, grade, syllabus))
			if err != nil {
				return fmt.Errorf("GenerateSchedule() > %w", err)
			}

			timeStyle := color.New(color.FgCyan, color.Bold)
			for _, s := range sessions {
				timeStyle.Printf("%s  ", s.Time)
				fmt.Printf("%s (%d min)\n", s.Activity, s.DurationMinutes)
				if s.Notes != "" {
					fmt.Printf("      %s\n", s.Notes)
				}
			}
			return nil
		},
	}

	command.Flags().StringVar(&language, "language", "", "Answer language (default English)")
	command.Flags().StringVar(&grade, "grade", "", "Study level, e.g. High School")
	command.Flags().StringVar(&syllabus, "syllabus", "", "Syllabus or curriculum to follow")

	return command
}
