package main

import (
	"fmt"

	"github.com/agdealers8/learn-and-conquer/internal/config"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/provider/gemini"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

func newGeminiClient(cfg *config.Config) (*gemini.Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.ImageModel, cfg.Gemini.RetryAttempts), nil
}

// oneShotProfile is the study profile used by the non-interactive
// subcommands, built from the optional profile flags.
func oneShotProfile(language, grade, syllabus string) provider.Profile {
	if language == "" {
		language = "English"
	}
	return provider.Profile{
		Language: language,
		Grade:    grade,
		Syllabus: syllabus,
	}
}
