// Package users declares the credential store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Repository is the credential store: username → password hash + role.
type Repository interface {
	// Create inserts user and fills its ID and CreatedAt. A taken username
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// CreateIfAbsent inserts user unless the username exists. It reports
	// whether a row was written and never modifies an existing one.
	CreateIfAbsent(ctx context.Context, user *models.User) (bool, error)

	// GetUserByLogin returns common.ErrorNotFound when the username is absent.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// UpdateRole and Delete return common.ErrorNotFound when the username is absent.
	UpdateRole(ctx context.Context, login string, role string) error
	Delete(ctx context.Context, login string) error
}
