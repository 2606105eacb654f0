package grpc

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
)

// fakeUsers is a scripted UserService: sessions maps token → principal.
type fakeUsers struct {
	sessions map[string]*models.User
	revoked  map[string]bool

	registerErr error
	loginToken  string
	loginErr    error
	updateErr   error
	deleteErr   error

	lastRegister []string
	lastUpdate   []string
	lastDelete   string
	lastActor    *models.User
	lastLogout   string
	resolveCalls int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{sessions: map[string]*models.User{}, revoked: map[string]bool{}}
}

func (f *fakeUsers) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	f.lastRegister = []string{username, password, role}
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if role == "" {
		role = common.RoleUser
	}
	return &models.User{ID: "1", UserName: username, Role: role}, nil
}

func (f *fakeUsers) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeUsers) Logout(ctx context.Context, header string) error {
	f.lastLogout = header
	tok, err := services.ExtractBearer(header)
	if err != nil {
		return err
	}
	f.revoked[tok] = true
	return nil
}

func (f *fakeUsers) UpdateRole(ctx context.Context, actor *models.User, target, role string) error {
	f.lastActor = actor
	f.lastUpdate = []string{target, role}
	return f.updateErr
}

func (f *fakeUsers) DeleteUser(ctx context.Context, actor *models.User, target string) error {
	f.lastActor = actor
	f.lastDelete = target
	return f.deleteErr
}

func (f *fakeUsers) ResolvePrincipal(ctx context.Context, token string) (*models.User, error) {
	f.resolveCalls++
	if f.revoked[token] {
		return nil, common.ErrTokenRevoked
	}
	u, ok := f.sessions[token]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	return u, nil
}

func (f *fakeUsers) IsBlacklisted(token string) bool {
	return f.revoked[token]
}

func newTestServer(f *fakeUsers) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, f, f, nil)
}
