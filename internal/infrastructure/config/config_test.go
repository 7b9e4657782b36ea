package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

const testYAML = `
server:
  enabled: true
  host: 0.0.0.0
  port: 9090
  shutdownTimeout: 3
logger:
  level: debug
  output: stdout
machine:
  adminPassword: secret
  operationTimeout: 2
  bank:
    "10": 4
    "100": 2
catalog:
  products:
    - id: 1
      name: Water
      price: 50
      stock: 5
    - id: 2
      name: Juice
      price: 80
      stock: 0
journal:
  driver: memory
  listLimit: 7
`

func useConfigDir(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	oldPaths, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldPaths, oldDotEnv
	})
}

func TestLoadConfig_FromFile(t *testing.T) {
	useConfigDir(t, map[string]string{"test.yaml": testYAML})

	cfg, err := LoadConfig(Test)

	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "stdout", cfg.Logger.Output)
	assert.Equal(t, "secret", cfg.Machine.AdminPassword)
	assert.Equal(t, 2*time.Second, cfg.Machine.OperationTimeout)
	assert.Equal(t, "rub", cfg.Machine.Currency)
	assert.Equal(t, 7, cfg.Journal.ListLimit)
	require.Len(t, cfg.Catalog.Products, 2)
	assert.Equal(t, ProductConfig{ID: 2, Name: "Juice", Price: 80, Stock: 0}, cfg.Catalog.Products[1])

	bank, err := cfg.Machine.BankSeed()
	require.NoError(t, err)
	assert.Equal(t, entity.CoinPack{entity.Coin10: 4, entity.Coin100: 2}, bank)

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	useConfigDir(t, map[string]string{
		"production.yaml": testYAML,
		".env":            "VM_ADMIN_PASSWORD=from-dotenv\n",
	})
	t.Setenv("VM_ENV", "PRODUCTION")
	t.Setenv("VM_SERVER_PORT", "7070")
	t.Setenv("VM_LOGGER_LEVEL", "warn")
	// registered so the value loaded from .env is cleared afterwards
	t.Setenv("VM_ADMIN_PASSWORD", "")
	require.NoError(t, os.Unsetenv("VM_ADMIN_PASSWORD"))

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "from-dotenv", cfg.Machine.AdminPassword)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	useConfigDir(t, nil)

	cfg, err := LoadConfig(Development)

	require.NoError(t, err)
	assert.False(t, cfg.Server.Enabled)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, JournalDriverMemory, cfg.Journal.Driver)
	assert.Equal(t, 64, cfg.Machine.DispatcherQueueSize)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)

	err = cfg.Validate()
	assert.ErrorContains(t, err, "machine.adminPassword is required")
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	useConfigDir(t, map[string]string{"test.yaml": "server: [unclosed"})

	_, err := LoadConfig(Test)

	assert.ErrorContains(t, err, "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Enabled: true, Host: "localhost", Port: 8080},
			Machine: MachineConfig{AdminPassword: "pw", Bank: map[string]int{"50": 1}},
			Catalog: CatalogConfig{Products: []ProductConfig{{ID: 1, Name: "Water", Price: 50, Stock: 1}}},
			Journal: JournalConfig{Driver: JournalDriverMemory},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"Bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"Server disabled skips port", func(c *Config) { c.Server = ServerConfig{} }, ""},
		{"Unknown coin", func(c *Config) { c.Machine.Bank["20"] = 1 }, "denomination is not accepted"},
		{"Non-numeric coin", func(c *Config) { c.Machine.Bank["ten"] = 1 }, "not a number"},
		{"Negative count", func(c *Config) { c.Machine.Bank["10"] = -1 }, "negative"},
		{"Duplicate product", func(c *Config) {
			c.Catalog.Products = append(c.Catalog.Products, c.Catalog.Products[0])
		}, "listed twice"},
		{"Free product", func(c *Config) { c.Catalog.Products[0].Price = 0 }, "catalog product 1"},
		{"Unknown journal", func(c *Config) { c.Journal.Driver = "mongo" }, "journal.driver"},
		{"Postgres without database", func(c *Config) { c.Journal.Driver = JournalDriverPostgres }, "database.host"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
