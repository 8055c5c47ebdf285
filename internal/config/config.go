package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Axonaut struct {
		APIKey  string        `envconfig:"AXONAUT_CABA_API_KEY" required:"true"`
		BaseURL string        `envconfig:"AXONAUT_BASE_URL" default:"https://axonaut.com/api/v2"`
		Timeout time.Duration `envconfig:"AXONAUT_TIMEOUT" default:"30s"`
	}

	Notion struct {
		APIKey       string        `envconfig:"NOTION_API_KEY" required:"true"`
		BaseURL      string        `envconfig:"NOTION_BASE_URL" default:"https://api.notion.com"`
		InvoicesDBID string        `envconfig:"NOTION_INVOICES_DB_ID" required:"true"`
		PaymentsDBID string        `envconfig:"NOTION_PAYMENTS_DB_ID" required:"true"`
		Timeout      time.Duration `envconfig:"NOTION_TIMEOUT" default:"30s"`
	}

	DryRun   bool   `envconfig:"DRY_RUN" default:"false"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
