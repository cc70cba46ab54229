// Package admin holds the declarative admin-panel configuration: which
// columns each resource lists, which fields are filterable, searchable or
// read-only, which child resources are edited inline, and whether the
// resource accepts mutation at all. The HTTP layer serves this metadata to
// the admin UI shell and the gatekeeper consults it before any permission
// check.
package admin

import (
	"fmt"
	"sort"
)

// Verbs used in permission strings ("resource:verb").
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Inline binds a child resource to its parent's form, the way distribution
// items are edited inside a distribution.
type Inline struct {
	Resource string `json:"resource"`
	// Extra is the number of empty child rows the form offers by default.
	Extra int `json:"extra"`
}

// Fieldset groups form fields under a label.
type Fieldset struct {
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

// Registration configures the admin surface of one resource.
type Registration struct {
	Resource       string     `json:"resource"`
	ListDisplay    []string   `json:"list_display"`
	ListFilter     []string   `json:"list_filter,omitempty"`
	SearchFields   []string   `json:"search_fields,omitempty"`
	ReadonlyFields []string   `json:"readonly_fields,omitempty"`
	Fieldsets      []Fieldset `json:"fieldsets,omitempty"`
	Inlines        []Inline   `json:"inlines,omitempty"`

	// immutable marks append-only resources: records can be browsed but
	// never added, changed or deleted through the admin, whoever asks.
	immutable bool
}

// HasAddPermission reports whether the admin ever accepts new records for
// this resource. Role permissions are checked separately; a false here is
// final.
func (r *Registration) HasAddPermission() bool { return !r.immutable }

// HasChangePermission reports whether existing records may be modified.
func (r *Registration) HasChangePermission() bool { return !r.immutable }

// HasDeletePermission reports whether records may be deleted.
func (r *Registration) HasDeletePermission() bool { return !r.immutable }

// AllowsAction reports whether the registration permits the verb at all.
func (r *Registration) AllowsAction(verb string) bool {
	switch verb {
	case ActionCreate:
		return r.HasAddPermission()
	case ActionUpdate:
		return r.HasChangePermission()
	case ActionDelete:
		return r.HasDeletePermission()
	default:
		return true
	}
}

// IsReadonlyField reports whether the field is declared read-only.
func (r *Registration) IsReadonlyField(name string) bool {
	for _, f := range r.ReadonlyFields {
		if f == name {
			return true
		}
	}
	return false
}

// Registry is the set of registered resources.
type Registry struct {
	byResource map[string]*Registration
}

func NewRegistry() *Registry {
	return &Registry{byResource: make(map[string]*Registration)}
}

// Register adds a resource registration. Registering the same resource
// twice is a programming error.
func (reg *Registry) Register(r *Registration) {
	if r.Resource == "" {
		panic("admin: registration without resource name")
	}
	if _, exists := reg.byResource[r.Resource]; exists {
		panic(fmt.Sprintf("admin: resource %q registered twice", r.Resource))
	}
	reg.byResource[r.Resource] = r
}

func (reg *Registry) Lookup(resource string) (*Registration, bool) {
	r, ok := reg.byResource[resource]
	return r, ok
}

// All returns the registrations sorted by resource name.
func (reg *Registry) All() []*Registration {
	out := make([]*Registration, 0, len(reg.byResource))
	for _, r := range reg.byResource {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Resource < out[j].Resource })
	return out
}
