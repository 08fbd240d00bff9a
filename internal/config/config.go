package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
)

type Config struct {
	Service ServiceConfig `yaml:"service"`
	Server  ServerConfig  `yaml:"server"`
}

// LoadConfig reads the yaml config file pointed at by CONFIG_PATH and then
// applies environment-variable overrides. A missing config file is not fatal
// because a deployment may configure everything through the environment.
func LoadConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/checkout.yaml"
	}

	cfg := defaultConfig()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:        "checkout",
			Environment: "development",
			WebRoot:     "./web",
			PayPal: PayPalConfig{
				APIBaseURL:  "https://api-m.sandbox.paypal.com",
				ReturnURL:   "http://localhost:8888",
				DisplayName: "PayPal Checkout Demo",
			},
		},
		Server: ServerConfig{
			HTTP: HTTPConfig{Host: "", Port: 8888},
		},
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CLIENT_ID"); v != "" {
		c.Service.PayPal.ClientID = v
	}
	if v := os.Getenv("CLIENT_SECRET"); v != "" {
		c.Service.PayPal.ClientSecret = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		c.Service.PayPal.ReturnURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTP.Port = port
		}
	}
}

// Validate fails fast when the processor credentials are absent so that no
// payment attempt can proceed against a half-configured service.
func (c *Config) Validate() error {
	if c.Service.PayPal.ClientID == "" || c.Service.PayPal.ClientSecret == "" {
		return domainErrors.ErrCredentialsMissing
	}
	return nil
}
