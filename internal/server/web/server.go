// Package web serves the browser UI: registration, login, the destination
// pages and the want-to-go list, all behind a cookie-held session.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/auth"
	"github.com/dmitrijs2005/wanttogo/internal/server/services"
)

// Pinger reports whether the account store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries the transport settings the server needs from config.
type Options struct {
	Address        string
	CookieName     string
	CookieTTL      time.Duration
	SecureCookie   bool
	RequestTimeout time.Duration
}

type Server struct {
	address      string
	cookieName   string
	cookieTTL    time.Duration
	secureCookie bool
	timeout      time.Duration

	users        *services.UserService
	lists        *services.ListService
	destinations *services.DestinationService
	throttle     auth.LoginThrottle
	store        Pinger

	pages  *renderer
	logger logging.Logger
}

func NewServer(opts Options, us *services.UserService, ls *services.ListService, ds *services.DestinationService,
	throttle auth.LoginThrottle, store Pinger, l logging.Logger) (*Server, error) {

	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}

	return &Server{
		address:      opts.Address,
		cookieName:   opts.CookieName,
		cookieTTL:    opts.CookieTTL,
		secureCookie: opts.SecureCookie,
		timeout:      opts.RequestTimeout,
		users:        us,
		lists:        ls,
		destinations: ds,
		throttle:     throttle,
		store:        store,
		pages:        pages,
		logger:       l.With("module", "web"),
	}, nil
}

// Handler returns the routed handler wrapped in the middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /register", s.handleRegisterForm)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)

	mux.Handle("GET /home", s.requireSession(s.handleHome))
	mux.Handle("GET /destination/{name}", s.requireSession(s.handleDestination))
	mux.Handle("POST /add-to-list", s.requireSession(s.handleAddToList))
	mux.Handle("GET /want-to-go-list", s.requireSession(s.handleList))

	return Chain(mux,
		RequestID,
		Logger(s.logger),
		Recovery(s.logger),
		Timeout(s.timeout),
	)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
