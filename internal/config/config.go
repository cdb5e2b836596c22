// Package config loads application configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/ilyakaznacheev/cleanenv"
)

// ErrMissingToken is returned by Validate when no GitHub token was provided.
// It is reported before any network call is attempted.
var ErrMissingToken = errors.New("github token not provided: set GITHUB_TOKEN or pass --token")

// Config holds the application configuration. Command-line flags override
// the loaded values before Validate is called.
type Config struct {
	GitHubToken string `env:"GITHUB_TOKEN"`
	Owner       string `env:"PRPAL_OWNER" env-default:"octocat"`
	Repo        string `env:"PRPAL_REPO" env-default:"hello-world"`
	OutputDir   string `env:"PRPAL_OUTPUT_DIR" env-default:"pr-conversation"`
	Format      string `env:"PRPAL_FORMAT" env-default:"md"`
}

// RepoFullName returns the configured repository as "owner/repo".
func (c *Config) RepoFullName() string {
	return c.Owner + "/" + c.Repo
}

// Validate checks that the configuration is complete and consistent. A
// missing token is a configuration error, reported once and fatal.
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return ErrMissingToken
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.Owner, validation.Required),
		validation.Field(&c.Repo, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Format, validation.Required, validation.In("json", "md", "html")),
	)
}

// Load reads configuration from a .env file in the working directory when
// one exists, falling back to process environment variables otherwise.
// Validation is deferred until the CLI has applied its flag overrides.
func Load() (*Config, error) {
	var cfg Config

	if _, err := os.Stat(".env"); err == nil {
		if err := cleanenv.ReadConfig(".env", &cfg); err != nil {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return &cfg, nil
}
