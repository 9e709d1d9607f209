package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from STOREFRONT_-prefixed environment variables; a local
// .env file is loaded first when present.
type Config struct {
	ListenAddr     string `envconfig:"LISTEN_ADDR" default:":8080"`
	DataServiceURL string `envconfig:"DATA_SERVICE_URL" required:"true"`
	DataServiceKey string `envconfig:"DATA_SERVICE_KEY" required:"true"`
	CartFile       string `envconfig:"CART_FILE" default:"cart.json"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	return &cfg, nil
}
