package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 4, cfg.ForwardWorkers)
	assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 30*time.Second, cfg.ForwardTimeout())
	assert.Equal(t, time.Minute, cfg.ResolverCacheTTL())
	assert.Equal(t, 15*time.Second, cfg.StatsCacheTTL())
	assert.Nil(t, cfg.Brokers())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := `
PORT = "8080"
FORWARD_WORKERS = 8
KAFKA_BROKERS = "kafka-1:9092, kafka-2:9092"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_SECONDS", "3")

	cfg, err := load(viper.New(), dir)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 8, cfg.ForwardWorkers)
	assert.Equal(t, 3*time.Second, cfg.ShutdownGrace())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers())
}

func TestLoad_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT = = ="), 0o600))

	_, err := load(viper.New(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
