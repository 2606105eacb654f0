// Package client is a thin gRPC client for the Gatekeeper service. It
// attaches the session token to outgoing calls and maps gRPC statuses back
// to the shared sentinel errors.
package client

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// DefaultTimeout bounds every call made through GRPCClient.
const DefaultTimeout = 10 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.GatekeeperClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthorizationHeaderName)
	if token != "" {
		md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withAccessToken(ctx, s.accessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily; the first call opens the connection.
func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	conn, err := grpc.NewClient(c.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewGatekeeperClient(conn)
	return c, nil
}

// SetAccessToken sets the token sent with every subsequent call.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) AccessToken() string {
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName, password, role string) (*pb.RegisterResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Username: userName, Password: password, Role: role})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// Login stores the returned token on the client and returns it.
func (s *GRPCClient) Login(ctx context.Context, userName, password string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	return resp.AccessToken, nil
}

func (s *GRPCClient) Logout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{}); err != nil {
		return s.mapError(err)
	}
	s.accessToken = ""
	return nil
}

func (s *GRPCClient) Whoami(ctx context.Context) (*pb.WhoamiResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	resp, err := s.client.Whoami(ctx, &pb.WhoamiRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UpdateRole(ctx context.Context, userName, role string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if _, err := s.client.UpdateRole(ctx, &pb.UpdateRoleRequest{Username: userName, Role: role}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, userName string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if _, err := s.client.DeleteUser(ctx, &pb.DeleteUserRequest{Username: userName}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return errors.New("unexpected ping status: " + resp.Status)
	}
	return nil
}

// mapError turns a gRPC status into the matching sentinel, keeping the
// server message for context.
func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrInvalidSession.Error() {
			sentinel = common.ErrInvalidSession
		} else {
			sentinel = common.ErrorUnauthorized
		}
	case codes.PermissionDenied:
		sentinel = common.ErrForbidden
	case codes.AlreadyExists:
		sentinel = common.ErrConflict
	case codes.NotFound:
		sentinel = common.ErrorNotFound
	case codes.InvalidArgument:
		sentinel = common.ErrValidation
	case codes.Unavailable:
		sentinel = common.ErrStoreUnavailable
	default:
		return err
	}

	return &Error{Sentinel: sentinel, Message: st.Message()}
}
