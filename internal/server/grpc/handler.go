package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC statuses. Token validation failures
// collapse into one message so callers cannot tell which check failed.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrInvalidSession):
		return status.Error(codes.Unauthenticated, common.ErrInvalidSession.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, common.ErrMalformedHeader):
		return status.Error(codes.InvalidArgument, common.ErrMalformedHeader.Error())
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrConflict), errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, common.ErrConflict.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "store unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// Register is public for plain accounts. Asking for any role other than
// USER is a role assignment and needs the caller to pass the gate.
func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	if req.Role != "" && req.Role != common.RoleUser {
		if err := s.gate.Authorize(auth.OpUpdateRole, PrincipalFromContext(ctx)); err != nil {
			return nil, toStatus(err)
		}
	}

	u, err := s.users.Register(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.RegisterResponse{Username: u.UserName, Role: u.Role}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if err := s.users.Logout(ctx, authorizationHeader(ctx)); err != nil {
		return nil, toStatus(err)
	}

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) UpdateRole(ctx context.Context, req *pb.UpdateRoleRequest) (*pb.UpdateRoleResponse, error) {

	if err := s.users.UpdateRole(ctx, PrincipalFromContext(ctx), req.Username, req.Role); err != nil {
		return nil, toStatus(err)
	}

	return &pb.UpdateRoleResponse{}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {

	if err := s.users.DeleteUser(ctx, PrincipalFromContext(ctx), req.Username); err != nil {
		return nil, toStatus(err)
	}

	return &pb.DeleteUserResponse{}, nil
}

func (s *GRPCServer) Whoami(ctx context.Context, req *pb.WhoamiRequest) (*pb.WhoamiResponse, error) {

	u := PrincipalFromContext(ctx)
	if u == nil {
		return nil, toStatus(common.ErrUnauthenticated)
	}

	return &pb.WhoamiResponse{Username: u.UserName, Role: u.Role}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
