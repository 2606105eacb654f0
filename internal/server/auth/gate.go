package auth

import (
	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Privileged operations checked by the Gate.
const (
	OpUpdateRole = "update_role"
	OpDeleteUser = "delete_user"
)

// Gate decides whether a principal may run a privileged operation.
// Operations it does not know are denied.
type Gate struct {
	required map[string]string
}

// NewGate returns a Gate that reserves every privileged operation for
// SUPERADMIN. ADMIN is deliberately not enough.
func NewGate() *Gate {
	return &Gate{required: map[string]string{
		OpUpdateRole: common.RoleSuperAdmin,
		OpDeleteUser: common.RoleSuperAdmin,
	}}
}

// Authorize returns common.ErrUnauthenticated for a nil principal and
// common.ErrForbidden when the principal's role does not match.
func (g *Gate) Authorize(op string, principal *models.User) error {
	if principal == nil {
		return common.ErrUnauthenticated
	}
	role, ok := g.required[op]
	if !ok || principal.Role != role {
		return common.ErrForbidden
	}
	return nil
}
