package socketkit

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type envConfig struct {
	BaseURL          string `envconfig:"SOCKETKIT_BASE_URL" required:"true"`
	AuthorizationKey string `envconfig:"SOCKETKIT_AUTHORIZATION_KEY" required:"true"`
	SigningKey       string `envconfig:"SOCKETKIT_SIGNING_KEY" required:"true"`
	ClientID         string `envconfig:"SOCKETKIT_CLIENT_ID"`
}

// NewClientFromEnv builds a client from SOCKETKIT_* environment
// variables. SOCKETKIT_CLIENT_ID is optional; when present it is
// applied as if SetClientID had been called.
func NewClientFromEnv() (*Client, error) {
	var cfg envConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	client, err := NewClient(Config{
		BaseURL:          cfg.BaseURL,
		AuthorizationKey: cfg.AuthorizationKey,
		SigningKey:       cfg.SigningKey,
	})
	if err != nil {
		return nil, err
	}

	if cfg.ClientID != "" {
		client.SetClientID(cfg.ClientID)
	}
	return client, nil
}
