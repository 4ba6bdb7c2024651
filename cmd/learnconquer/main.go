package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCommand := &cobra.Command{
		Use:   "learnconquer",
		Short: "Learn & Conquer, an AI-powered study companion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp()
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "Path to the configuration file")

	rootCommand.AddCommand(newFlashcardsCommand())
	rootCommand.AddCommand(newSummarizeCommand())
	rootCommand.AddCommand(newPlanCommand())
	rootCommand.AddCommand(newVersionCommand())

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
