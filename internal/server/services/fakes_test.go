package services

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/gatekeeper/internal/server/revocation"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// --- in-memory credential store ---

type memUsers struct {
	mu     sync.Mutex
	byName map[string]*models.User
	nextID int

	getErr     error
	createErr  error
	raceCreate bool
	updateErr  error
	deleteErr  error
}

func newMemUsers() *memUsers { return &memUsers{byName: map[string]*models.User{}} }

func (f *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.UserName]; ok || f.raceCreate {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	cp := *u
	cp.ID = strconv.Itoa(f.nextID)
	cp.CreatedAt = time.Now()
	f.byName[u.UserName] = &cp
	out := cp
	return &out, nil
}

func (f *memUsers) CreateIfAbsent(ctx context.Context, u *models.User) (bool, error) {
	_, err := f.Create(ctx, u)
	if err == common.ErrorAlreadyExists {
		return false, nil
	}
	return err == nil, err
}

func (f *memUsers) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (f *memUsers) UpdateRole(ctx context.Context, login, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byName[login]
	if !ok {
		return common.ErrorNotFound
	}
	u.Role = role
	return nil
}

func (f *memUsers) Delete(ctx context.Context, login string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byName[login]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byName, login)
	return nil
}

func (f *memUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byName)
}

// --- in-memory token record store ---

type memTokens struct {
	mu      sync.Mutex
	records map[string]*models.TokenRecord
	nextID  int64

	createErr error
	revokeErr error
	listErr   error
}

func newMemTokens() *memTokens { return &memTokens{records: map[string]*models.TokenRecord{}} }

func (f *memTokens) Create(ctx context.Context, rec *models.TokenRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	rec.ID = f.nextID
	cp := *rec
	f.records[rec.Token] = &cp
	return nil
}

func (f *memTokens) FindByToken(ctx context.Context, token string) (*models.TokenRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *r
	return &out, nil
}

func (f *memTokens) Revoke(ctx context.Context, token, reason string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.revokeErr != nil {
		return false, f.revokeErr
	}
	r, ok := f.records[token]
	if !ok || r.Revoked {
		return false, nil
	}
	r.Revoked, r.RevokedAt, r.RevokeReason = true, &at, reason
	return true, nil
}

func (f *memTokens) RevokeBySubject(ctx context.Context, subject, reason string, at time.Time) ([]models.TokenRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.revokeErr != nil {
		return nil, f.revokeErr
	}
	var out []models.TokenRecord
	for _, r := range f.records {
		if r.Subject == subject && !r.Revoked && r.ExpiresAt.After(at) {
			r.Revoked, r.RevokedAt, r.RevokeReason = true, &at, reason
			out = append(out, models.TokenRecord{Token: r.Token, ExpiresAt: r.ExpiresAt, Revoked: true})
		}
	}
	return out, nil
}

func (f *memTokens) ListRevokedActive(ctx context.Context, now time.Time) ([]models.TokenRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.TokenRecord
	for _, r := range f.records {
		if r.Revoked && r.ExpiresAt.After(now) {
			out = append(out, models.TokenRecord{Token: r.Token, ExpiresAt: r.ExpiresAt, Revoked: true})
		}
	}
	return out, nil
}

// --- repository manager ---

type fakeRepoManager struct {
	u *memUsers
	t *memTokens
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository        { return m.u }
func (m *fakeRepoManager) Tokens(db dbx.DBTX) tokens.Repository      { return m.t }

// --- environment ---

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type testEnv struct {
	db       *sql.DB
	mock     sqlmock.Sqlmock
	users    *memUsers
	tokens   *memTokens
	rm       *fakeRepoManager
	registry *revocation.Registry
	cfg      *config.Config
	hasher   auth.Hasher
	ts       *TokenService
	us       *UserService
	clock    *fakeClock
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	e := &testEnv{
		db:       db,
		mock:     mock,
		users:    newMemUsers(),
		tokens:   newMemTokens(),
		registry: revocation.New(),
		cfg: &config.Config{
			TokenIssuer:                 "gatekeeper",
			AccessTokenValidityDuration: 10 * time.Hour,
			TokenRecordRetention:        10 * 365 * 24 * time.Hour,
			AdminPassword:               "adminpassword",
			SuperAdminPassword:          "superadminpassword",
		},
		hasher: auth.NewBcryptHasher(bcrypt.MinCost),
		clock:  &fakeClock{t: time.Now().Truncate(time.Second)},
	}
	e.rm = &fakeRepoManager{u: e.users, t: e.tokens}
	e.ts = NewTokenService(db, e.rm, auth.NewSigner(testSecret, e.cfg.TokenIssuer), e.registry, e.cfg, logging.Nop{}, nil).
		WithClock(e.clock.Now)
	e.us = NewUserService(db, e.rm, e.hasher, e.ts, auth.NewGate(), logging.Nop{}, nil)
	return e
}

func (e *testEnv) bootstrap(t *testing.T) {
	t.Helper()
	if err := NewBootstrapper(e.db, e.rm, e.hasher, e.cfg, logging.Nop{}).EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults error: %v", err)
	}
}

func (e *testEnv) principal(t *testing.T, name string) *models.User {
	t.Helper()
	u, err := e.users.GetUserByLogin(context.Background(), name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return u
}
