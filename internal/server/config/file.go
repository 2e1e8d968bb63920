package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/wanttogo/internal/flagx"
	"github.com/dmitrijs2005/wanttogo/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the server configuration. It uses
// timex.Duration for interval fields so files can say "24h" instead of
// nanoseconds. Zero values leave the corresponding Config field untouched.
type FileConfig struct {
	HTTPAddr               string         `json:"http_addr" toml:"http_addr" yaml:"http_addr"`
	GRPCAddr               string         `json:"grpc_addr" toml:"grpc_addr" yaml:"grpc_addr"`
	Storage                string         `json:"storage" toml:"storage" yaml:"storage"`
	DatabaseDSN            string         `json:"database_dsn" toml:"database_dsn" yaml:"database_dsn"`
	SecretKey              string         `json:"secret_key" toml:"secret_key" yaml:"secret_key"`
	SessionTTL             timex.Duration `json:"session_ttl" toml:"session_ttl" yaml:"session_ttl"`
	SessionSweepInterval   timex.Duration `json:"session_sweep_interval" toml:"session_sweep_interval" yaml:"session_sweep_interval"`
	CookieName             string         `json:"cookie_name" toml:"cookie_name" yaml:"cookie_name"`
	SecureCookie           *bool          `json:"secure_cookie" toml:"secure_cookie" yaml:"secure_cookie"`
	PasswordHasher         string         `json:"password_hasher" toml:"password_hasher" yaml:"password_hasher"`
	LoginAttemptsPerMinute *int           `json:"login_attempts_per_minute" toml:"login_attempts_per_minute" yaml:"login_attempts_per_minute"`
	RequestTimeout         timex.Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
	LogFormat              string         `json:"log_format" toml:"log_format" yaml:"log_format"`
	LogLevel               string         `json:"log_level" toml:"log_level" yaml:"log_level"`
	CatalogFile            string         `json:"catalog_file" toml:"catalog_file" yaml:"catalog_file"`
	S3AccessKey            string         `json:"s3_access_key" toml:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey            string         `json:"s3_secret_key" toml:"s3_secret_key" yaml:"s3_secret_key"`
	S3Region               string         `json:"s3_region" toml:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint         string         `json:"s3_base_endpoint" toml:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	MediaURLTTL            timex.Duration `json:"media_url_ttl" toml:"media_url_ttl" yaml:"media_url_ttl"`
}

// decodeFile reads path and decodes it according to its extension:
// .json, .toml, or .yaml/.yml.
func decodeFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fc := &FileConfig{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, fc)
	case ".toml":
		_, err = toml.Decode(string(data), fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// parseFile overlays Config with values from the file named by -c/-config
// or WANTTOGO_CONFIG. It panics when the file cannot be read or parsed,
// matching how flag errors are treated.
func parseFile(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	fc, err := decodeFile(path)
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.HTTPAddr, fc.HTTPAddr)
	setString(&c.GRPCAddr, fc.GRPCAddr)
	setString(&c.Storage, fc.Storage)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.SecretKey, fc.SecretKey)
	setString(&c.CookieName, fc.CookieName)
	setString(&c.PasswordHasher, fc.PasswordHasher)
	setString(&c.LogFormat, fc.LogFormat)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.CatalogFile, fc.CatalogFile)
	setString(&c.S3AccessKey, fc.S3AccessKey)
	setString(&c.S3SecretKey, fc.S3SecretKey)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)

	if fc.SessionTTL.Duration > 0 {
		c.SessionTTL = fc.SessionTTL.Duration
	}
	if fc.SessionSweepInterval.Duration > 0 {
		c.SessionSweepInterval = fc.SessionSweepInterval.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		c.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.MediaURLTTL.Duration > 0 {
		c.MediaURLTTL = fc.MediaURLTTL.Duration
	}
	if fc.SecureCookie != nil {
		c.SecureCookie = *fc.SecureCookie
	}
	if fc.LoginAttemptsPerMinute != nil {
		c.LoginAttemptsPerMinute = *fc.LoginAttemptsPerMinute
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
