package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/api"
	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods need a live session.
var protectedMethods = map[string]bool{
	api.MethodViewDestination: true,
	api.MethodAddToList:       true,
	api.MethodViewList:        true,
}

func sessionToken(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.SessionTokenHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) sessionInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if protectedMethods[info.FullMethod] {

		token := sessionToken(ctx)
		if len(token) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		sess, err := s.users.ResolveToken(ctx, token)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				return nil, status.Error(codes.Unauthenticated, "invalid or expired session")
			}
			return nil, mapError(err)
		}

		ctx = sessions.WithSession(ctx, sess)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "grpc request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, err
}
