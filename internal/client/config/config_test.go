package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
	t.Setenv(flagx.ConfigFileEnv, "")
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_DefaultsWithoutArgs(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint_addr": "file:9000",
		"request_timeout": "20s",
		"online_check_interval": 5000000000
	}`), 0o600))

	withArgs(t, "-c", path, "-a", "flag:9001")

	cfg := LoadConfig()
	assert.Equal(t, "flag:9001", cfg.ServerEndpointAddr)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout":"1s"}`), 0o600))
	withArgs(t, "-config", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, time.Second, cfg.RequestTimeout)
}

func TestParseJSON_Invalid(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
	withArgs(t, "-config", bad)

	require.Panics(t, func() { parseJSON(&Config{}) })
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-a", "example:1", "-t", "7", "-i", "2", "-unrelated", "x")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "example:1", cfg.ServerEndpointAddr)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.OnlineCheckInterval)
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	c.RequestTimeout = 0
	require.Error(t, c.Validate())

	c.LoadDefaults()
	c.ServerEndpointAddr = ""
	require.Error(t, c.Validate())
}
