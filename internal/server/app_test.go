package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noMigrations struct {
	repomanager.PostgresRepositoryManager
	err error
}

func (m *noMigrations) RunMigrations(context.Context, *sql.DB) error { return m.err }

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.SecretKey = "0123456789abcdef0123456789abcdef"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.MetricsAddr = ""
	return c
}

func withSeams(t *testing.T, db *sql.DB, dbErr error, migErr error) {
	t.Helper()
	origOpen, origRM := openDB, newRepositoryManager
	openDB = func(context.Context, string) (*sql.DB, error) { return db, dbErr }
	newRepositoryManager = func() repomanager.RepositoryManager { return &noMigrations{err: migErr} }
	t.Cleanup(func() { openDB, newRepositoryManager = origOpen, origRM })
}

func TestNewApp_RejectsShortKey(t *testing.T) {
	called := false
	origOpen := openDB
	openDB = func(context.Context, string) (*sql.DB, error) { called = true; return nil, nil }
	t.Cleanup(func() { openDB = origOpen })

	c := testConfig()
	c.SecretKey = "short"

	_, err := NewApp(context.Background(), c, logging.Nop{})
	require.Error(t, err)
	assert.False(t, called, "database must not be opened with an unsafe config")
}

func TestNewApp_DBError(t *testing.T) {
	withSeams(t, nil, errors.New("refused"), nil)

	_, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestNewApp_MigrationError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	withSeams(t, db, nil, errors.New("bad migration"))

	_, err = NewApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunRestoresBootstrapsAndStops(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	withSeams(t, db, nil, nil)

	exp := time.Now().Add(time.Hour)
	mock.ExpectQuery(`SELECT token, expires_at\s+FROM token_records`).
		WillReturnRows(sqlmock.NewRows([]string{"token", "expires_at"}).AddRow("revoked-token", exp))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("admin", sqlmock.AnyArg(), "ADMIN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("1", time.Now()))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("superadmin", sqlmock.AnyArg(), "SUPERADMIN").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectClose()

	app, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case <-app.Ready():
	case err := <-done:
		t.Fatalf("app stopped before serving: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("app did not become ready")
	}
	assert.True(t, app.tokenService.IsBlacklisted("revoked-token"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunFailsWhenRestoreFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	withSeams(t, db, nil, nil)

	mock.ExpectQuery(`SELECT token, expires_at`).WillReturnError(errors.New("down"))
	mock.ExpectClose()

	app, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restoring revocation registry")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunBootstrapFailureIsNotReady(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	withSeams(t, db, nil, nil)

	mock.ExpectQuery(`SELECT token, expires_at`).
		WillReturnRows(sqlmock.NewRows([]string{"token", "expires_at"}))
	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(errors.New("down"))
	mock.ExpectClose()

	app, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap")
	select {
	case <-app.Ready():
		t.Fatal("ready must stay open when bootstrap fails")
	default:
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
