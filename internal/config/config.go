package config

import (
	"fmt"
	"path/filepath"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/spf13/viper"
)

type Config struct {
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Outputs OutputsConfig `mapstructure:"outputs"`
}

type GeminiConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model" validate:"required"`
	ImageModel    string `mapstructure:"image_model" validate:"required"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type AdminConfig struct {
	OwnerEmail string `mapstructure:"owner_email" validate:"omitempty,email"`
	Secret     string `mapstructure:"secret"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/learnconquer")
	}

	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.image_model", "gemini-2.0-flash-preview-image-generation")
	v.SetDefault("gemini.retry_attempts", provider.DefaultRetryAttempts)
	v.SetDefault("outputs.export_directory", filepath.Join("exports"))

	// Secrets come from the environment only, never from the config file.
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.model", "GEMINI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("admin.owner_email", "LEARNCONQUER_OWNER_EMAIL"); err != nil {
		return nil, fmt.Errorf("failed to bind LEARNCONQUER_OWNER_EMAIL environment variable: %w", err)
	}
	if err := v.BindEnv("admin.secret", "LEARNCONQUER_ADMIN_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind LEARNCONQUER_ADMIN_SECRET environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
