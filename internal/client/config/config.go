package config

import (
	"errors"
	"time"
)

type Config struct {
	// ServerEndpointAddr is the host:port of the server's gRPC listener.
	ServerEndpointAddr string
	// RequestTimeout bounds each command's round trip.
	RequestTimeout time.Duration
	// OnlineCheckInterval is the ping period behind the online/offline prompt.
	OnlineCheckInterval time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// Validate rejects settings the CLI cannot run with.
func (c *Config) Validate() error {
	if c.ServerEndpointAddr == "" {
		return errors.New("server address is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	return nil
}

// LoadConfig returns defaults overlaid by the config file, then by flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
