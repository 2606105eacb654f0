package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
)

// UserService provides account operations:
//   - Register / Login: create users and verify credentials
//   - Logout: revoke a presented token
//   - UpdateRole / DeleteUser: SUPERADMIN-only account management
//   - ResolvePrincipal: map a presented token to its stored account
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	tokens      *TokenService
	gate        *auth.Gate
	logger      logging.Logger
	metrics     *metrics.Metrics
	dummyHash   string
}

// NewUserService wires a UserService. m may be nil.
func NewUserService(db *sql.DB, rm repomanager.RepositoryManager, h auth.Hasher, ts *TokenService,
	g *auth.Gate, l logging.Logger, m *metrics.Metrics) *UserService {
	return &UserService{
		db:          db,
		repomanager: rm,
		hasher:      h,
		tokens:      ts,
		gate:        g,
		logger:      l.With("module", "user_service"),
		metrics:     m,
		dummyHash:   newDummyHash(h),
	}
}

// Register creates an account. An empty role means USER. A taken username
// yields common.ErrConflict and leaves the existing account untouched.
func (s *UserService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrValidation
	}
	if role == "" {
		role = common.RoleUser
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByLogin(ctx, username)
	switch {
	case err == nil:
		return nil, common.ErrConflict
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "user lookup failed", "username", username, "error", err)
		return nil, common.ErrStoreUnavailable
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		s.logger.Error(ctx, "hashing password failed", "error", err)
		return nil, common.ErrorInternal
	}

	u, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash, Role: role})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrConflict
		}
		s.logger.Error(ctx, "creating user failed", "username", username, "error", err)
		return nil, common.ErrStoreUnavailable
	}

	s.logger.Info(ctx, "user registered", "username", u.UserName, "role", u.Role)
	return u, nil
}

// Login verifies credentials and issues a token. Missing users and wrong
// passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Compare(password, s.dummyHash)
			s.metrics.LoginFailed()
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "username", username, "error", err)
		return "", common.ErrStoreUnavailable
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		s.metrics.LoginFailed()
		return "", common.ErrorUnauthorized
	}

	return s.tokens.Issue(ctx, user)
}

// Logout revokes the token carried by header. See TokenService.Logout.
func (s *UserService) Logout(ctx context.Context, header string) error {
	return s.tokens.Logout(ctx, header)
}

// UpdateRole sets target's role. Tokens already issued keep the role they
// were signed with.
func (s *UserService) UpdateRole(ctx context.Context, actor *models.User, target, role string) error {
	if err := s.gate.Authorize(auth.OpUpdateRole, actor); err != nil {
		return err
	}
	if target == "" || role == "" {
		return common.ErrValidation
	}

	err := s.repomanager.Users(s.db).UpdateRole(ctx, target, role)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.logger.Error(ctx, "updating role failed", "username", target, "error", err)
		return common.ErrStoreUnavailable
	}

	s.logger.Info(ctx, "role updated", "actor", actor.UserName, "username", target, "role", role)
	return nil
}

// DeleteUser removes target and revokes every active token it holds, in
// one transaction. The revoked tokens join the registry after commit.
func (s *UserService) DeleteUser(ctx context.Context, actor *models.User, target string) error {
	if err := s.gate.Authorize(auth.OpDeleteUser, actor); err != nil {
		return err
	}
	if target == "" {
		return common.ErrValidation
	}

	var revoked []models.TokenRecord
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).Delete(ctx, target); err != nil {
			return err
		}
		var err error
		revoked, err = s.repomanager.Tokens(tx).RevokeBySubject(ctx, target, models.RevokeReasonUserDeleted, s.tokens.now())
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.logger.Error(ctx, "deleting user failed", "username", target, "error", err)
		return common.ErrStoreUnavailable
	}

	s.tokens.Blacklist(ctx, revoked, models.RevokeReasonUserDeleted)
	s.logger.Info(ctx, "user deleted", "actor", actor.UserName, "username", target)
	return nil
}

// ResolvePrincipal validates token and loads the account it names. A valid
// token whose account no longer exists yields common.ErrUnauthenticated.
func (s *UserService) ResolvePrincipal(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		s.logger.Error(ctx, "principal lookup failed", "username", claims.Subject, "error", err)
		return nil, common.ErrStoreUnavailable
	}
	return user, nil
}

// fallbackDummyHash is a bcrypt hash of a throwaway password.
const fallbackDummyHash = "$2a$10$R9h/cIPz0gi.URNNX3kh2O8cWy4ruEQDo13SsP9BSRIn67wBmwA3a"

// newDummyHash hashes a random secret with h so a login for an unknown user
// costs as much as one for a known user. It runs once at construction.
func newDummyHash(h auth.Hasher) string {
	secret, err := common.MakeRandHexString(16)
	if err != nil {
		return fallbackDummyHash
	}
	hash, err := h.Hash(secret)
	if err != nil || hash == "" {
		return fallbackDummyHash
	}
	return hash
}
