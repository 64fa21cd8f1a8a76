package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

//Providers
const (
	ProviderCohere = "cohere"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

//defaultModels are used when Model is not configured
var defaultModels = map[string]string{
	ProviderCohere: "command",
	ProviderOpenAI: "gpt-3.5-turbo-instruct",
	ProviderGemini: "gemini-2.0-flash",
}

//Config represents options given in the environment
type Config struct {
	ListenAddr string //addr format used for net.Dial; default: :8080
	Prefix     string //url prefix to mount the server to without trailing slash

	Provider string //cohere, openai, or gemini; default: cohere
	APIKey   string //provider credential; missing keys surface as relay failures
	Model    string //default depends on Provider
	Endpoint string //overrides the provider's API URL

	AltBrand string //replaces the provider's brand in replies; default: Mians

	ReadHeaderTimeout time.Duration //default: 10s
	ShutdownTimeout   time.Duration //default: 10s

	Debug bool
}

//loadDotEnv loads the given env files (default: .env). Missing files are skipped.
func loadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("Error reading %s: %w", name, err)
		}
	}
	return nil
}

//loadConfig reads the Config from the environment, after loading a .env file if one exists
func loadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := envconfig.Process("MIANS", config); err != nil {
		return nil, fmt.Errorf("Error reading configuration from environment: %w", err)
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}

	config.Prefix = strings.TrimSuffix(config.Prefix, "/")

	config.Provider = strings.ToLower(config.Provider)
	if config.Provider == "" {
		config.Provider = ProviderCohere
	}

	model, ok := defaultModels[config.Provider]
	if !ok {
		return nil, fmt.Errorf("MIANS_PROVIDER must be one of cohere, openai, or gemini, not %q", config.Provider)
	}
	if config.Model == "" {
		config.Model = model
	}

	if config.AltBrand == "" {
		config.AltBrand = "Mians"
	}

	if config.ReadHeaderTimeout == 0 {
		config.ReadHeaderTimeout = 10 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	return config, nil
}
