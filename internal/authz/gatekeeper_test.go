package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"refill-system/internal/admin"
)

func newGatekeeper() *Gatekeeper {
	return NewGatekeeper(admin.NewDefaultRegistry())
}

func TestCanGrantsByExplicitPermission(t *testing.T) {
	g := newGatekeeper()
	perms := map[string]bool{DepotsView: true}

	assert.True(t, g.Can(perms, DepotsView))
	assert.False(t, g.Can(perms, DepotsCreate))
	assert.False(t, g.Can(perms, UsersView))
}

func TestSuperuserBypassesRolePermissions(t *testing.T) {
	g := newGatekeeper()
	perms := map[string]bool{Superuser: true}

	assert.True(t, g.Can(perms, UsersDelete))
	assert.True(t, g.Can(perms, TransactionsExport))
	assert.True(t, g.Can(perms, InvoicesResend))
	assert.True(t, g.Can(perms, AuditView))
}

// The audit log is append-only. Mutation is denied before the superuser
// shortcut, so nobody can write, whatever their role grants say.
func TestAuditMutationDeniedForEveryone(t *testing.T) {
	g := newGatekeeper()

	everything := map[string]bool{Superuser: true}
	for _, p := range All {
		everything[p] = true
	}

	for _, permission := range []string{"audit:create", "audit:update", "audit:delete"} {
		assert.False(t, g.Can(everything, permission), permission)
	}
	assert.True(t, g.Can(everything, AuditView))
}

func TestCanHandlesUnknownResources(t *testing.T) {
	g := newGatekeeper()

	// Permissions outside the registry fall through to the role grants.
	perms := map[string]bool{"reports:view": true}
	assert.True(t, g.Can(perms, "reports:view"))
	assert.False(t, g.Can(perms, "reports:create"))
}

func TestCanHandlesMalformedPermission(t *testing.T) {
	g := newGatekeeper()

	assert.False(t, g.Can(map[string]bool{}, "not-a-permission"))
	assert.True(t, g.Can(map[string]bool{"not-a-permission": true}, "not-a-permission"))
}

func TestEmptyPermissionSetDeniesAll(t *testing.T) {
	g := newGatekeeper()

	assert.False(t, g.Can(nil, DepotsView))
	assert.False(t, g.Can(map[string]bool{}, AuditView))
}
