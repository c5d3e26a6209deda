package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/de-tools/vmwatch/pkg/models/domain"
	"github.com/spf13/viper"
)

const (
	DefaultEndpoint   = "https://cloud.ravellosystems.com/api/v1/applications"
	DefaultSourceName = "Ravello"
	DefaultTimeout    = 30 * time.Second
)

// envKeys are the keys operators may supply through the environment
// (VMWATCH_*) instead of the config file. The encrypted_* values hold
// base64 ciphertext blobs, never plaintext.
var envKeys = []string{
	"region",
	"inventory_endpoint",
	"channel",
	"source_name",
	"http_timeout",
	"encrypted_user",
	"encrypted_password",
	"encrypted_webhook_url",
}

type fileConfig struct {
	Region              string        `mapstructure:"region"`
	InventoryEndpoint   string        `mapstructure:"inventory_endpoint"`
	Channel             string        `mapstructure:"channel"`
	SourceName          string        `mapstructure:"source_name"`
	HTTPTimeout         time.Duration `mapstructure:"http_timeout"`
	EncryptedUser       string        `mapstructure:"encrypted_user"`
	EncryptedPassword   string        `mapstructure:"encrypted_password"`
	EncryptedWebhookURL string        `mapstructure:"encrypted_webhook_url"`
}

// Load reads and validates the job configuration from the given file,
// applying defaults and VMWATCH_* environment overrides.
func Load(path string) (*domain.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("inventory_endpoint", DefaultEndpoint)
	v.SetDefault("source_name", DefaultSourceName)
	v.SetDefault("http_timeout", DefaultTimeout)
	v.SetEnvPrefix("VMWATCH")
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse vmwatch config: %w", err)
	}

	if fc.Channel == "" {
		return nil, fmt.Errorf("missing required config key %q", "channel")
	}
	if fc.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("config key %q must be positive", "http_timeout")
	}

	user, err := decodeSecret("encrypted_user", fc.EncryptedUser)
	if err != nil {
		return nil, err
	}
	password, err := decodeSecret("encrypted_password", fc.EncryptedPassword)
	if err != nil {
		return nil, err
	}
	webhookURL, err := decodeSecret("encrypted_webhook_url", fc.EncryptedWebhookURL)
	if err != nil {
		return nil, err
	}

	return &domain.Config{
		Region:            fc.Region,
		InventoryEndpoint: fc.InventoryEndpoint,
		Channel:           fc.Channel,
		SourceName:        fc.SourceName,
		HTTPTimeout:       fc.HTTPTimeout,
		Encrypted: domain.EncryptedCredentials{
			User:       user,
			Password:   password,
			WebhookURL: webhookURL,
		},
	}, nil
}

func decodeSecret(key, value string) (domain.EncryptedSecret, error) {
	if value == "" {
		return nil, fmt.Errorf("missing required config key %q", key)
	}
	blob, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("config key %q is not valid base64: %w", key, err)
	}
	return blob, nil
}
