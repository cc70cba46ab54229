package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The field sets declared for each resource are contract with the admin
// UI shell. These tests pin them so an accidental edit shows up in CI.
func TestDefaultRegistryFieldSets(t *testing.T) {
	reg := NewDefaultRegistry()

	cases := []struct {
		resource     string
		listDisplay  []string
		listFilter   []string
		searchFields []string
		readonly     []string
	}{
		{
			resource:    ResourceUsers,
			listDisplay: []string{"username", "employee_id", "role", "depot", "is_staff"},
			listFilter:  []string{"role", "depot"},
		},
		{
			resource:     ResourceDepots,
			listDisplay:  []string{"code", "name"},
			searchFields: []string{"name", "code"},
		},
		{
			resource:    ResourceEquipment,
			listDisplay: []string{"sku", "name", "equipment_type", "is_active"},
			listFilter:  []string{"equipment_type", "is_active"},
		},
		{
			resource:     ResourceCustomers,
			listDisplay:  []string{"name", "email", "payment_type", "is_meter_installed"},
			searchFields: []string{"name", "email"},
		},
		{
			resource:     ResourceInventory,
			listDisplay:  []string{"customer", "equipment", "quantity"},
			listFilter:   []string{"equipment"},
			searchFields: []string{"customer_name"},
		},
		{
			resource:    ResourceTransactions,
			listDisplay: []string{"transaction_number", "customer", "total_amount", "created_at"},
			readonly:    []string{"transaction_number", "created_at"},
		},
		{
			resource:    ResourceInvoices,
			listDisplay: []string{"invoice_number", "status", "generated_at", "emailed_at"},
			listFilter:  []string{"status"},
			readonly:    []string{"invoice_number", "pdf_path", "generated_at"},
		},
		{
			resource:    ResourceDistributions,
			listDisplay: []string{"distribution_number", "depot", "user", "confirmed_at"},
			readonly:    []string{"distribution_number", "created_at"},
		},
		{
			resource:    ResourceAudit,
			listDisplay: []string{"created_at", "user", "action", "entity_type", "entity_id"},
			listFilter:  []string{"action", "entity_type"},
			readonly:    []string{"id", "user", "action", "entity_type", "entity_id", "payload", "created_at"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.resource, func(t *testing.T) {
			r, ok := reg.Lookup(tc.resource)
			require.True(t, ok, "resource %q not registered", tc.resource)

			assert.Equal(t, tc.listDisplay, r.ListDisplay)
			assert.Equal(t, tc.listFilter, r.ListFilter)
			assert.Equal(t, tc.searchFields, r.SearchFields)
			assert.Equal(t, tc.readonly, r.ReadonlyFields)
		})
	}
}

func TestUsersFieldsetGroupsSystemInfo(t *testing.T) {
	reg := NewDefaultRegistry()

	r, ok := reg.Lookup(ResourceUsers)
	require.True(t, ok)
	require.Len(t, r.Fieldsets, 1)
	assert.Equal(t, "LPG System Info", r.Fieldsets[0].Label)
	assert.Equal(t, []string{"employee_id", "role", "depot"}, r.Fieldsets[0].Fields)
}

func TestDistributionsEditItemsInline(t *testing.T) {
	reg := NewDefaultRegistry()

	r, ok := reg.Lookup(ResourceDistributions)
	require.True(t, ok)
	require.Len(t, r.Inlines, 1)
	assert.Equal(t, "distribution_items", r.Inlines[0].Resource)
	assert.Equal(t, 1, r.Inlines[0].Extra)
}

func TestAuditRegistrationDeniesAllMutation(t *testing.T) {
	reg := NewDefaultRegistry()

	r, ok := reg.Lookup(ResourceAudit)
	require.True(t, ok)

	assert.False(t, r.HasAddPermission())
	assert.False(t, r.HasChangePermission())
	assert.False(t, r.HasDeletePermission())

	assert.False(t, r.AllowsAction(ActionCreate))
	assert.False(t, r.AllowsAction(ActionUpdate))
	assert.False(t, r.AllowsAction(ActionDelete))
	assert.True(t, r.AllowsAction(ActionView))
}

func TestMutableRegistrationsAllowMutation(t *testing.T) {
	reg := NewDefaultRegistry()

	for _, resource := range []string{ResourceUsers, ResourceDepots, ResourceTransactions, ResourceInvoices} {
		r, ok := reg.Lookup(resource)
		require.True(t, ok)
		assert.True(t, r.HasAddPermission(), resource)
		assert.True(t, r.HasChangePermission(), resource)
		assert.True(t, r.HasDeletePermission(), resource)
	}
}

func TestReadonlyFieldLookup(t *testing.T) {
	reg := NewDefaultRegistry()

	r, ok := reg.Lookup(ResourceInvoices)
	require.True(t, ok)
	assert.True(t, r.IsReadonlyField("invoice_number"))
	assert.True(t, r.IsReadonlyField("pdf_path"))
	assert.False(t, r.IsReadonlyField("status"))
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Registration{Resource: "widgets"})

	assert.Panics(t, func() {
		reg.Register(&Registration{Resource: "widgets"})
	})
	assert.Panics(t, func() {
		reg.Register(&Registration{})
	})
}

func TestAllReturnsSortedRegistrations(t *testing.T) {
	reg := NewDefaultRegistry()

	all := reg.All()
	require.Len(t, all, 9)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Resource, all[i].Resource)
	}
}
