package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  grpc_addr: ":6000"
account:
  withdrawals_enabled: true
printer:
  console: true
  journal_path: "statement.jsonl"
mysql:
  host: "db"
  conn_max_lifetime: 5m
log:
  level: debug
`)

	cfg, err := Load(path, true, writeFile(t, "none.env", ""))
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.Server.GRPCAddr)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.True(t, cfg.Account.WithdrawalsEnabled)
	assert.Equal(t, "02/01/2006", cfg.Account.DateLayout)
	assert.True(t, cfg.Printer.Console)
	assert.Equal(t, "statement.jsonl", cfg.Printer.JournalPath)
	assert.Equal(t, "db", cfg.MySQL.Host)
	assert.Equal(t, 5*time.Minute, cfg.MySQL.ConnMaxLifetime)
	assert.Equal(t, 100, cfg.MySQL.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	env := writeFile(t, "none.env", "")

	cfg, err := Load(missing, false, env)
	require.NoError(t, err)
	assert.Equal(t, ":50051", cfg.Server.GRPCAddr)
	assert.False(t, cfg.Account.WithdrawalsEnabled)

	_, err = Load(missing, true, env)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", "server:\n  grpc_addr: \":6000\"\n")
	t.Setenv("BANK_GRPC_ADDR", ":7000")
	t.Setenv("BANK_WITHDRAWALS_ENABLED", "true")
	t.Setenv("MYSQL_PORT", "3310")

	cfg, err := Load(path, true, writeFile(t, "none.env", ""))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.GRPCAddr)
	assert.True(t, cfg.Account.WithdrawalsEnabled)
	assert.Equal(t, 3310, cfg.MySQL.Port)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// godotenv 不覆寫已存在的變數，先確保未設定
	unsetEnv(t, "BANK_LOG_LEVEL")
	unsetEnv(t, "BANK_HTTP_ADDR")
	env := writeFile(t, "test.env", "BANK_LOG_LEVEL=warn\nBANK_HTTP_ADDR=:9090\n")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false, env)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
}

func TestLoad_InvalidValues(t *testing.T) {
	env := writeFile(t, "none.env", "")

	_, err := Load(writeFile(t, "bad.yaml", "server: [unclosed"), true, env)
	assert.Error(t, err)

	t.Setenv("BANK_WITHDRAWALS_ENABLED", "maybe")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), false, env)
	assert.Error(t, err)
}
