package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const principalKey ctxKey = "principal"

// protectedMethods require a valid, unrevoked token whose subject still exists.
var protectedMethods = map[string]bool{
	pb.Gatekeeper_UpdateRole_FullMethodName: true,
	pb.Gatekeeper_DeleteUser_FullMethodName: true,
	pb.Gatekeeper_Whoami_FullMethodName:     true,
}

// PrincipalFromContext returns the caller resolved by the interceptor, or nil.
func PrincipalFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(principalKey).(*models.User)
	return u
}

func withPrincipal(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, principalKey, u)
}

func authorizationHeader(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// accessTokenInterceptor resolves the caller of protected methods from the
// authorization metadata. On public methods a token is optional; when one is
// present and valid the caller is resolved as well, otherwise the call
// proceeds anonymously.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	header := authorizationHeader(ctx)
	protected := protectedMethods[info.FullMethod]

	if header == "" || info.FullMethod == pb.Gatekeeper_Logout_FullMethodName {
		if protected {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}
		return handler(ctx, req)
	}

	token, err := services.ExtractBearer(header)
	if err != nil {
		if protected {
			return nil, toStatus(err)
		}
		return handler(ctx, req)
	}

	if s.blacklist.IsBlacklisted(token) {
		if protected {
			return nil, toStatus(common.ErrTokenRevoked)
		}
		return handler(ctx, req)
	}

	principal, err := s.users.ResolvePrincipal(ctx, token)
	if err != nil {
		if protected {
			return nil, toStatus(err)
		}
		return handler(ctx, req)
	}

	return handler(withPrincipal(ctx, principal), req)
}

// loggingInterceptor tags each call with a request id and records method,
// status code and latency.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	requestID := uuid.NewString()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	elapsed := time.Since(start)
	s.metrics.RPC(info.FullMethod, code.String(), elapsed)

	args := []any{"request_id", requestID, "method", info.FullMethod, "code", code.String(), "duration", elapsed}
	if code == codes.Internal || code == codes.Unavailable || code == codes.Unknown {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request handled", args...)
	}

	return resp, err
}
