package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/wanttogo/internal/api"
	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/server/catalog"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ api.TravelServiceServer = (*GRPCServer)(nil)

// mapError converts a service error into a status without leaking internals.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, common.ErrorValidation.Error())
	case errors.Is(err, common.ErrorUsernameTaken):
		return status.Error(codes.AlreadyExists, common.ErrorUsernameTaken.Error())
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrorInvalidCredentials.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrorDestinationNotFound):
		return status.Error(codes.NotFound, common.ErrorDestinationNotFound.Error())
	case errors.Is(err, common.ErrorStoreUnavailable):
		return status.Error(codes.Unavailable, "service temporarily unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &api.RegisterResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {

	if !s.throttle.Allow(ctx, peerKey(ctx)) {
		return nil, status.Error(codes.ResourceExhausted, common.ErrorTooManyAttempts.Error())
	}

	res, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &api.LoginResponse{
		Token:     res.Token,
		Username:  res.Session.UserName,
		ExpiresAt: res.Session.ExpiresAt,
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.users.Logout(ctx, sessionToken(ctx)); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ViewDestination(ctx context.Context, req *api.ViewDestinationRequest) (*api.Destination, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	view, err := s.destinations.View(ctx, sess.UserID, req.Name)
	if err != nil {
		return nil, mapError(err)
	}

	d := view.Destination
	return &api.Destination{
		Key:           d.Key,
		Name:          d.Name,
		Country:       d.Country,
		Description:   d.Description,
		MediaURL:      view.MediaURL,
		AlreadyInList: view.AlreadyInList,
	}, nil
}

func (s *GRPCServer) AddToList(ctx context.Context, req *api.AddToListRequest) (*api.AddToListResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	d, outcome, err := s.destinations.AddToList(ctx, sess.UserID, req.DestinationName)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &api.AddToListResponse{Key: catalog.Slug(d.Name), Outcome: api.OutcomeAdded}
	if outcome == models.AlreadyPresent {
		resp.Outcome = api.OutcomeAlreadyPresent
	}
	return resp, nil
}

func (s *GRPCServer) ViewList(ctx context.Context, _ *emptypb.Empty) (*api.ViewListResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.lists.ListFor(ctx, sess.UserID)
	if err != nil {
		return nil, mapError(err)
	}
	return &api.ViewListResponse{Destinations: list}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*api.PingResponse, error) {

	return &api.PingResponse{Status: "OK"}, nil

}

func currentSession(ctx context.Context) (*models.Session, error) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return sess, nil
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}
