// Package grpc exposes the want-to-go services as the wanttogo.TravelService
// gRPC API. Sessions travel in the session_token metadata key.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/wanttogo/internal/api"
	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/auth"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the account side the handlers depend on.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	Logout(ctx context.Context, token string) error
	ResolveToken(ctx context.Context, token string) (*models.Session, error)
}

type DestinationService interface {
	View(ctx context.Context, userID, key string) (*services.DestinationView, error)
	AddToList(ctx context.Context, userID, name string) (models.Destination, models.AddOutcome, error)
}

type ListService interface {
	ListFor(ctx context.Context, userID string) ([]string, error)
}

type GRPCServer struct {
	address      string
	users        UserService
	destinations DestinationService
	lists        ListService
	throttle     auth.LoginThrottle
	health       *health.Server
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ds DestinationService, ls ListService,
	throttle auth.LoginThrottle) *GRPCServer {

	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		users:        us,
		destinations: ds,
		lists:        ls,
		throttle:     throttle,
		health:       health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.sessionInterceptor))

	api.RegisterTravelServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	return srv.Serve(listen)
}
