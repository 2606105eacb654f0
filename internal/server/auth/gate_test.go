package auth

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

func TestGate_Authorize(t *testing.T) {
	t.Parallel()

	g := NewGate()

	tests := []struct {
		name      string
		op        string
		principal *models.User
		want      error
	}{
		{"nil principal", OpUpdateRole, nil, common.ErrUnauthenticated},
		{"user", OpUpdateRole, &models.User{UserName: "alice", Role: common.RoleUser}, common.ErrForbidden},
		{"admin update", OpUpdateRole, &models.User{UserName: "admin", Role: common.RoleAdmin}, common.ErrForbidden},
		{"admin delete", OpDeleteUser, &models.User{UserName: "admin", Role: common.RoleAdmin}, common.ErrForbidden},
		{"lowercase superadmin", OpDeleteUser, &models.User{UserName: "x", Role: "superadmin"}, common.ErrForbidden},
		{"superadmin update", OpUpdateRole, &models.User{UserName: "superadmin", Role: common.RoleSuperAdmin}, nil},
		{"superadmin delete", OpDeleteUser, &models.User{UserName: "superadmin", Role: common.RoleSuperAdmin}, nil},
		{"unknown op", "drop_tables", &models.User{UserName: "superadmin", Role: common.RoleSuperAdmin}, common.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Authorize(tt.op, tt.principal)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
