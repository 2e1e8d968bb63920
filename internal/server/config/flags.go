package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/flagx"
)

var knownFlags = []string{
	"-a", "-g", "-storage", "-d", "-s", "-t", "-secure-cookie", "-hasher",
	"-login-rate", "-log-format", "-log-level", "-catalog", "-e", "-u", "-p", "-r",
}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string           HTTP bind address (e.g., ":8080")
//	-g string           gRPC bind address (e.g., ":50051")
//	-storage string     "postgres" or "memory"
//	-d string           PostgreSQL DSN
//	-s string           session token HMAC secret key
//	-t int              session lifetime, minutes
//	-secure-cookie      mark the session cookie Secure (use -secure-cookie=false to unset)
//	-hasher string      "argon2" or "plain"
//	-login-rate int     login attempts per minute per client, 0 disables
//	-log-format string  "json", "text" or "pretty"
//	-log-level string   "debug", "info", "warn" or "error"
//	-catalog string     destination catalog YAML file
//	-e string           S3 base endpoint
//	-u string           S3 access key
//	-p string           S3 secret key
//	-r string           S3 region
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run the web server")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port to run the gRPC server")
	fs.StringVar(&config.Storage, "storage", config.Storage, "account storage: postgres or memory")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")

	fs.BoolVar(&config.SecureCookie, "secure-cookie", config.SecureCookie, "set Secure on the session cookie")
	fs.StringVar(&config.PasswordHasher, "hasher", config.PasswordHasher, "password hasher: argon2 or plain")
	fs.IntVar(&config.LoginAttemptsPerMinute, "login-rate", config.LoginAttemptsPerMinute, "login attempts per minute per client")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format: json, text or pretty")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.CatalogFile, "catalog", config.CatalogFile, "destination catalog file")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is whole minutes; leave a finer file value alone unless -t was given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
		}
	})
}
