// Package grpc exposes the gatekeeper operations over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"google.golang.org/grpc"
)

// UserService is the account API the transport drives.
type UserService interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, header string) error
	UpdateRole(ctx context.Context, actor *models.User, target, role string) error
	DeleteUser(ctx context.Context, actor *models.User, target string) error
	ResolvePrincipal(ctx context.Context, token string) (*models.User, error)
}

// Blacklist answers whether a presented token was revoked.
type Blacklist interface {
	IsBlacklisted(token string) bool
}

type GRPCServer struct {
	pb.UnimplementedGatekeeperServer
	address   string
	users     UserService
	blacklist Blacklist
	gate      *auth.Gate
	logger    logging.Logger
	metrics   *metrics.Metrics
}

func NewGRPCServer(a string, l logging.Logger, us UserService, bl Blacklist, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		blacklist: bl,
		gate:      auth.NewGate(),
		metrics:   m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterGatekeeperServer(srv, s)
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

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
