package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
)

// Bootstrap account names.
const (
	AdminUserName      = "admin"
	SuperAdminUserName = "superadmin"
)

// Bootstrapper guarantees the privileged accounts exist before serving.
type Bootstrapper struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	accounts    []bootstrapAccount
	logger      logging.Logger
}

type bootstrapAccount struct {
	name, role, password string
}

func NewBootstrapper(db *sql.DB, rm repomanager.RepositoryManager, h auth.Hasher, cfg *config.Config, l logging.Logger) *Bootstrapper {
	return &Bootstrapper{
		db:          db,
		repomanager: rm,
		hasher:      h,
		accounts: []bootstrapAccount{
			{AdminUserName, common.RoleAdmin, cfg.AdminPassword},
			{SuperAdminUserName, common.RoleSuperAdmin, cfg.SuperAdminPassword},
		},
		logger: l.With("module", "bootstrap"),
	}
}

// EnsureDefaults creates each missing bootstrap account with its configured
// password. Existing accounts are never modified, so running it any number
// of times, or from several processes at once, leaves one row per account.
func (b *Bootstrapper) EnsureDefaults(ctx context.Context) error {
	repo := b.repomanager.Users(b.db)

	for _, a := range b.accounts {
		hash, err := b.hasher.Hash(a.password)
		if err != nil {
			return fmt.Errorf("hashing %s password: %w", a.name, err)
		}

		created, err := repo.CreateIfAbsent(ctx, &models.User{UserName: a.name, PasswordHash: hash, Role: a.role})
		if err != nil {
			return fmt.Errorf("creating %s: %w", a.name, err)
		}

		if created {
			b.logger.Info(ctx, "bootstrap account created", "username", a.name, "role", a.role)
		} else {
			b.logger.Debug(ctx, "bootstrap account present", "username", a.name)
		}
	}
	return nil
}
