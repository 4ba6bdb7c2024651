package main

import (
	"context"
	"fmt"

	"github.com/agdealers8/learn-and-conquer/internal/export"
	"github.com/agdealers8/learn-and-conquer/internal/flashcard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFlashcardsCommand() *cobra.Command {
	var language, grade, syllabus string
	var save bool

	command := &cobra.Command{
		Use:   "flashcards [topic]",
		Short: "Generate a flashcard deck for a topic",
		Args:  cobra.ExactArgs(1),
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

			topic := args[0]
			fmt.Printf("Generating flashcards for %q (model: %s)\n\n", topic, client.GetModel())

			cards, err := client.GenerateFlashcards(context.Background(), topic, oneShotProfile(language, grade, syllabus))
			if err != nil {
				return fmt.Errorf("GenerateFlashcards() > %w", err)
			}

			front := color.New(color.FgCyan, color.Bold)
			for i, card := range cards {
				front.Printf("%d. %s\n", i+1, card.Front)
				fmt.Printf("   %s\n\n", card.Back)
			}

			if save {
				deck, err := flashcard.NewDeck(topic, cards)
				if err != nil {
					return fmt.Errorf("flashcard.NewDeck() > %w", err)
				}
				path, err := export.WriteFlashcardsJSON(cfg.Outputs.ExportDirectory, deck)
				if err != nil {
					return fmt.Errorf("export.WriteFlashcardsJSON() > %w", err)
				}
				color.Green("Saved %s", path)
			}
			return nil
		},
	}

	command.Flags().StringVar(&language, "language", "", "Answer language (default English)")
	command.Flags().StringVar(&grade, "grade", "", "Study level, e.g. High School")
	command.Flags().StringVar(&syllabus, "syllabus", "", "Syllabus or curriculum to follow")
	command.Flags().BoolVar(&save, "save", false, "Save the deck as JSON in the export directory")

	return command
}
