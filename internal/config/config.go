package config

import (
	"strings"

	"github.com/aroldan/inventory/pkg/config"
	"github.com/aroldan/inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// Defaults are the built-in settings applied before any config file or
// environment variable.
var Defaults = map[string]any{
	"store.path": "records.json",
	"log.level":  "info",
}

type Config struct {
	Store config.StoreConfig `koanf:"store"`
	Log   config.LogConfig   `koanf:"log"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Store.String())
	b.WriteString(c.Log.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}
