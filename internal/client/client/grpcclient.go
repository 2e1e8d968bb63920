package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/wanttogo/internal/api"
	"github.com/dmitrijs2005/wanttogo/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	conn        *grpc.ClientConn
	client      api.TravelServiceClient

	mu           sync.RWMutex
	sessionToken string
	userName     string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withSessionToken(ctx, token)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)

	// the server forgot us (expiry, restart): drop the stale token
	if status.Code(err) == codes.Unauthenticated && method != api.MethodLogin {
		s.setSession("", "")
	}

	return err
}

// NewWantToGoClientService connects lazily to endpointURL. Extra dial
// options are appended to the defaults (insecure transport, token
// interceptor).
func NewWantToGoClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewTravelServiceClient(conn)
	return nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionToken
}

func (s *GRPCClient) setSession(token, userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionToken = token
	s.userName = userName
}

func (s *GRPCClient) IsLoggedIn() bool { return s.token() != "" }

func (s *GRPCClient) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userName
}

func (s *GRPCClient) Register(ctx context.Context, userName, password string) error {

	_, err := s.client.Register(ctx, &api.RegisterRequest{Username: userName, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Login(ctx context.Context, userName, password string) error {

	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: userName, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.setSession(resp.Token, resp.Username)

	return nil
}

// Logout ends the server session. The local token is dropped even if the
// server cannot be reached.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if !s.IsLoggedIn() {
		return nil
	}
	_, err := s.client.Logout(ctx, &emptypb.Empty{})
	s.setSession("", "")
	return s.mapError(err)
}

func (s *GRPCClient) ViewDestination(ctx context.Context, name string) (*api.Destination, error) {
	resp, err := s.client.ViewDestination(ctx, &api.ViewDestinationRequest{Name: name})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) AddToList(ctx context.Context, destinationName string) (*api.AddToListResponse, error) {
	resp, err := s.client.AddToList(ctx, &api.AddToListRequest{DestinationName: destinationName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ViewList(ctx context.Context) ([]string, error) {
	resp, err := s.client.ViewList(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Destinations, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrorInvalidCredentials.Error() {
			return ErrInvalidCredentials
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrUsernameTaken
	case codes.InvalidArgument:
		return ErrInvalidInput
	case codes.NotFound:
		return ErrNotFound
	case codes.ResourceExhausted:
		return ErrTooManyAttempts
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
