package admin

// Resource names used in permission strings and URLs.
const (
	ResourceUsers         = "users"
	ResourceDepots        = "depots"
	ResourceEquipment     = "equipment"
	ResourceCustomers     = "customers"
	ResourceInventory     = "inventory"
	ResourceTransactions  = "transactions"
	ResourceInvoices      = "invoices"
	ResourceDistributions = "distributions"
	ResourceAudit         = "audit"
)

// NewDefaultRegistry registers every admin resource of the billing system.
// The field sets below are contract: the regression tests pin them and the
// UI shell renders exactly what is declared here.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()

	reg.Register(&Registration{
		Resource:    ResourceUsers,
		ListDisplay: []string{"username", "employee_id", "role", "depot", "is_staff"},
		ListFilter:  []string{"role", "depot"},
		Fieldsets: []Fieldset{
			{Label: "LPG System Info", Fields: []string{"employee_id", "role", "depot"}},
		},
	})

	reg.Register(&Registration{
		Resource:     ResourceDepots,
		ListDisplay:  []string{"code", "name"},
		SearchFields: []string{"name", "code"},
	})

	reg.Register(&Registration{
		Resource:    ResourceEquipment,
		ListDisplay: []string{"sku", "name", "equipment_type", "is_active"},
		ListFilter:  []string{"equipment_type", "is_active"},
	})

	reg.Register(&Registration{
		Resource:     ResourceCustomers,
		ListDisplay:  []string{"name", "email", "payment_type", "is_meter_installed"},
		SearchFields: []string{"name", "email"},
	})

	reg.Register(&Registration{
		Resource:     ResourceInventory,
		ListDisplay:  []string{"customer", "equipment", "quantity"},
		ListFilter:   []string{"equipment"},
		SearchFields: []string{"customer_name"},
	})

	reg.Register(&Registration{
		Resource:       ResourceTransactions,
		ListDisplay:    []string{"transaction_number", "customer", "total_amount", "created_at"},
		ReadonlyFields: []string{"transaction_number", "created_at"},
	})

	reg.Register(&Registration{
		Resource:       ResourceInvoices,
		ListDisplay:    []string{"invoice_number", "status", "generated_at", "emailed_at"},
		ListFilter:     []string{"status"},
		ReadonlyFields: []string{"invoice_number", "pdf_path", "generated_at"},
	})

	reg.Register(&Registration{
		Resource:       ResourceDistributions,
		ListDisplay:    []string{"distribution_number", "depot", "user", "confirmed_at"},
		ReadonlyFields: []string{"distribution_number", "created_at"},
		Inlines:        []Inline{{Resource: "distribution_items", Extra: 1}},
	})

	// Audit entries are append-only once written: browsing is allowed,
	// mutation is denied for every caller.
	reg.Register(&Registration{
		Resource:    ResourceAudit,
		ListDisplay: []string{"created_at", "user", "action", "entity_type", "entity_id"},
		ListFilter:  []string{"action", "entity_type"},
		ReadonlyFields: []string{
			"id", "user", "action", "entity_type", "entity_id", "payload", "created_at",
		},
		immutable: true,
	})

	return reg
}
