package config

import (
	"fmt"
	"strings"
)

type StoreConfig struct {
	// Path is the location of the JSON backing file.
	Path string `koanf:"path"`
}

// String returns a string representation of the store configuration.
func (c *StoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  path: %s\n", c.Path))
	return b.String()
}

func (c *StoreConfig) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("store path must not be empty")
	}
	return nil
}
