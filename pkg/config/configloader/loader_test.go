package configloader

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Store struct {
		Path string `koanf:"path"`
	} `koanf:"store"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func (c *testConfig) Validate() error {
	if c.Store.Path == "" {
		return errors.New("store path must not be empty")
	}
	return nil
}

// chdir mirrors t.Chdir (Go 1.24+), which this toolchain lacks.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

var testDefaults = map[string]any{
	"store.path": "records.json",
	"log.level":  "info",
}

func Test_Load_DefaultsOnly(t *testing.T) {
	// given: an empty working directory, no env vars
	chdir(t, t.TempDir())
	// when
	cfg, err := Load[*testConfig]("inventory", testDefaults)
	// then
	require.NoError(t, err)
	assert.Equal(t, "records.json", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func Test_Load_YamlOverridesDefaults(t *testing.T) {
	// given
	dir := t.TempDir()
	chdir(t, dir)
	yaml := []byte("store:\n  path: shop.json\n")
	require.NoError(t, os.WriteFile("config.yaml", yaml, 0o644))
	// when
	cfg, err := Load[*testConfig]("inventory", testDefaults)
	// then
	require.NoError(t, err)
	assert.Equal(t, "shop.json", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func Test_Load_EnvOverridesYaml(t *testing.T) {
	// given
	dir := t.TempDir()
	chdir(t, dir)
	yaml := []byte("store:\n  path: shop.json\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile("config.yaml", yaml, 0o644))
	t.Setenv("INVENTORY_STORE_PATH", "env.json")
	// when
	cfg, err := Load[*testConfig]("inventory", testDefaults)
	// then: env wins over file, file still wins elsewhere
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func Test_Load_ValidationFailure(t *testing.T) {
	// given: no defaults, so the required store path ends up empty
	chdir(t, t.TempDir())
	// when
	_, err := Load[*testConfig]("inventory", nil)
	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
