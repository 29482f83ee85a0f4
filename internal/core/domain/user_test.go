package domain_test

import (
	"testing"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleAuthorizes(t *testing.T) {
	allActions := []domain.Action{
		domain.ActionViewDashboard,
		domain.ActionManageCatalog,
		domain.ActionRecordSale,
		domain.ActionInitializeDay,
		domain.ActionEditDraftCell,
		domain.ActionPublishDay,
		domain.ActionViewReports,
		domain.ActionManageUsers,
	}

	allowed := map[domain.Role]map[domain.Action]bool{
		domain.RoleViewer: {
			domain.ActionViewDashboard: true,
		},
		domain.RoleStaff: {
			domain.ActionViewDashboard: true,
			domain.ActionManageCatalog: true,
			domain.ActionRecordSale:    true,
			domain.ActionInitializeDay: true,
			domain.ActionEditDraftCell: true,
		},
		domain.RoleAdmin: {
			domain.ActionViewDashboard: true,
			domain.ActionManageCatalog: true,
			domain.ActionRecordSale:    true,
			domain.ActionInitializeDay: true,
			domain.ActionEditDraftCell: true,
			domain.ActionPublishDay:    true,
			domain.ActionViewReports:   true,
			domain.ActionManageUsers:   true,
		},
	}

	for role, grants := range allowed {
		for _, action := range allActions {
			want := grants[action]
			got := role.Authorizes(action)
			assert.Equalf(t, want, got, "role %s action %s", role, action)
		}
	}
}

func TestRoleAuthorizesUnknownActionDenied(t *testing.T) {
	assert.False(t, domain.RoleAdmin.Authorizes(domain.Action("format_disk")))
}

func TestRoleAuthorizesUnknownRoleDenied(t *testing.T) {
	for _, action := range []domain.Action{domain.ActionViewDashboard, domain.ActionManageUsers} {
		assert.False(t, domain.Role("root").Authorizes(action))
		assert.False(t, domain.Role("").Authorizes(action))
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.True(t, domain.RoleStaff.IsValid())
	assert.True(t, domain.RoleViewer.IsValid())
	assert.False(t, domain.Role("owner").IsValid())
	assert.False(t, domain.Role("").IsValid())
}
