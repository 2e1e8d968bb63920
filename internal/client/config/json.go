package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wanttogo/internal/flagx"
	"github.com/dmitrijs2005/wanttogo/internal/timex"
)

// fileConfig is the JSON shape of the client config file. Durations accept
// "3s" style strings or integer nanoseconds.
type fileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJSON overlays cfg with the file named by -c/-config or WANTTOGO_CONFIG.
// Only fields present in the file are applied. It panics on read or decode
// errors.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
}
