package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/flagx"
)

var clientFlags = []string{"-a", "-t", "-i"}

// parseFlags applies -a (address), -t and -i (whole seconds). Flags owned by
// other layers, such as -c, are filtered out first. It panics on bad input.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	addr := fs.String("a", cfg.ServerEndpointAddr, "server gRPC address (host:port)")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout/time.Second), "request timeout, seconds")
	intervalSec := fs.Int("i", int(cfg.OnlineCheckInterval/time.Second), "online check interval, seconds")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], clientFlags)); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = *addr
	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*intervalSec) * time.Second
}
