package authz

import (
	"strings"

	"refill-system/internal/admin"
)

// Gatekeeper decides whether a permission set allows an operation. It
// consults the admin registry first, so append-only resources stay closed
// even to superusers.
type Gatekeeper struct {
	registry *admin.Registry
}

func NewGatekeeper(registry *admin.Registry) *Gatekeeper {
	return &Gatekeeper{registry: registry}
}

func (g *Gatekeeper) Can(perms map[string]bool, permission string) bool {
	resource, verb, found := strings.Cut(permission, ":")
	if found {
		if reg, ok := g.registry.Lookup(resource); ok && !reg.AllowsAction(verb) {
			return false
		}
	}

	if perms[Superuser] {
		return true
	}
	return perms[permission]
}
