package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"friendly/internal/domain"
)

type Config struct {
	Lang          string
	CatalogPath   string
	CatalogSource string
	Overrides     []string
	DatabaseURL   string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (shell, CI, etc.).
	}

	cfg := &Config{
		Lang:          os.Getenv("FRIENDLY_LANG"),
		CatalogPath:   os.Getenv("FRIENDLY_CATALOG_PATH"),
		CatalogSource: os.Getenv("FRIENDLY_CATALOG_SOURCE"),
		Overrides:     splitList(os.Getenv("FRIENDLY_OVERRIDES")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks the loaded values.
func (c *Config) validate() error {
	c.Lang = strings.ReplaceAll(strings.TrimSpace(c.Lang), "_", "-")
	if c.Lang == "" {
		c.Lang = "fr"
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("config: FRIENDLY_LANG invalid (%q): %w", c.Lang, err)
	}

	c.CatalogPath = strings.TrimSpace(c.CatalogPath)
	c.CatalogSource = strings.ToLower(strings.TrimSpace(c.CatalogSource))
	if c.CatalogSource == "" {
		// A catalog path alone selects the file source.
		c.CatalogSource = domain.SourceEmbedded
		if c.CatalogPath != "" {
			c.CatalogSource = domain.SourceFile
		}
	}

	switch c.CatalogSource {
	case domain.SourceEmbedded:
	case domain.SourceFile:
		if c.CatalogPath == "" {
			return fmt.Errorf("config: FRIENDLY_CATALOG_PATH is required when FRIENDLY_CATALOG_SOURCE=%s", domain.SourceFile)
		}
	case domain.SourceDatabase:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required when FRIENDLY_CATALOG_SOURCE=%s", domain.SourceDatabase)
		}
	default:
		return fmt.Errorf("config: FRIENDLY_CATALOG_SOURCE must be one of %s, %s or %s (got %q)",
			domain.SourceEmbedded, domain.SourceFile, domain.SourceDatabase, c.CatalogSource)
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Apply overrides the loaded values with the non-empty arguments, such as
// command-line flags, and validates the result again. A catalog path given
// without a source selects the file source.
func (c *Config) Apply(lang, source, path string, overrides []string) error {
	if lang != "" {
		c.Lang = lang
	}
	if path != "" {
		c.CatalogPath = path
		if source == "" {
			source = domain.SourceFile
		}
	}
	if source != "" {
		c.CatalogSource = source
	}
	c.Overrides = append(c.Overrides, overrides...)
	return c.validate()
}
