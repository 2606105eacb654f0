package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{common.ErrInvalidToken, codes.Unauthenticated, "invalid session"},
		{common.ErrTokenExpired, codes.Unauthenticated, "invalid session"},
		{common.ErrTokenRevoked, codes.Unauthenticated, "invalid session"},
		{common.ErrSubjectMismatch, codes.Unauthenticated, "invalid session"},
		{common.ErrorUnauthorized, codes.Unauthenticated, "unauthorized"},
		{common.ErrUnauthenticated, codes.Unauthenticated, "unauthenticated"},
		{common.ErrForbidden, codes.PermissionDenied, "forbidden"},
		{common.ErrConflict, codes.AlreadyExists, common.ErrConflict.Error()},
		{common.ErrorNotFound, codes.NotFound, "not found"},
		{common.ErrMalformedHeader, codes.InvalidArgument, common.ErrMalformedHeader.Error()},
		{fmt.Errorf("%w: password too long", common.ErrValidation), codes.InvalidArgument, "validation error: password too long"},
		{common.ErrStoreUnavailable, codes.Unavailable, "store unavailable"},
		{errors.New("db error: boom"), codes.Internal, "internal error"},
	}
	for _, tt := range tests {
		st := status.Convert(toStatus(tt.err))
		assert.Equal(t, tt.code, st.Code(), tt.err.Error())
		assert.Equal(t, tt.msg, st.Message(), tt.err.Error())
	}
	assert.NoError(t, toStatus(nil))
}

func TestRegister_Plain(t *testing.T) {
	f := newFakeUsers()
	s := newTestServer(f)

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, common.RoleUser, resp.Role)
	assert.Equal(t, []string{"alice", "pw1", ""}, f.lastRegister)
}

func TestRegister_Conflict(t *testing.T) {
	f := newFakeUsers()
	f.registerErr = common.ErrConflict

	_, err := newTestServer(f).Register(context.Background(), &pb.RegisterRequest{Username: "alice", Password: "pw1"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestRegister_PrivilegedRoleNeedsSuperAdmin(t *testing.T) {
	f := newFakeUsers()
	s := newTestServer(f)
	req := &pb.RegisterRequest{Username: "bob", Password: "pw", Role: common.RoleAdmin}

	_, err := s.Register(context.Background(), req)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := withPrincipal(context.Background(), &models.User{UserName: "admin", Role: common.RoleAdmin})
	_, err = s.Register(ctx, req)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Nil(t, f.lastRegister)

	ctx = withPrincipal(context.Background(), &models.User{UserName: "superadmin", Role: common.RoleSuperAdmin})
	resp, err := s.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, common.RoleAdmin, resp.Role)
}

func TestLogin(t *testing.T) {
	f := newFakeUsers()
	f.loginToken = "tok"
	s := newTestServer(f)

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)

	f.loginErr = common.ErrorUnauthorized
	_, err = s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "bad"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestLogout_ReadsMetadata(t *testing.T) {
	f := newFakeUsers()
	s := newTestServer(f)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AuthorizationHeaderName, "Bearer T1"))
	_, err := s.Logout(ctx, &pb.LogoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer T1", f.lastLogout)
	assert.True(t, f.revoked["T1"])

	_, err = s.Logout(context.Background(), &pb.LogoutRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateRoleAndDelete_PassPrincipal(t *testing.T) {
	f := newFakeUsers()
	s := newTestServer(f)
	su := &models.User{UserName: "superadmin", Role: common.RoleSuperAdmin}
	ctx := withPrincipal(context.Background(), su)

	_, err := s.UpdateRole(ctx, &pb.UpdateRoleRequest{Username: "alice", Role: common.RoleAdmin})
	require.NoError(t, err)
	assert.Same(t, su, f.lastActor)
	assert.Equal(t, []string{"alice", common.RoleAdmin}, f.lastUpdate)

	_, err = s.DeleteUser(ctx, &pb.DeleteUserRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", f.lastDelete)

	f.deleteErr = common.ErrorNotFound
	_, err = s.DeleteUser(ctx, &pb.DeleteUserRequest{Username: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	f.updateErr = common.ErrForbidden
	_, err = s.UpdateRole(ctx, &pb.UpdateRoleRequest{Username: "alice", Role: "X"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestWhoami(t *testing.T) {
	s := newTestServer(newFakeUsers())

	_, err := s.Whoami(context.Background(), &pb.WhoamiRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := withPrincipal(context.Background(), &models.User{UserName: "alice", Role: common.RoleUser})
	resp, err := s.Whoami(ctx, &pb.WhoamiRequest{})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, common.RoleUser, resp.Role)
}

func TestPing(t *testing.T) {
	resp, err := newTestServer(newFakeUsers()).Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}
