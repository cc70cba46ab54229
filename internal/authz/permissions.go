package authz

// Permission strings assigned to roles. Format is "resource:verb" and
// matches the admin registry resource names.
const (
	Superuser = "superuser"

	UsersView   = "users:view"
	UsersCreate = "users:create"
	UsersUpdate = "users:update"
	UsersDelete = "users:delete"

	DepotsView   = "depots:view"
	DepotsCreate = "depots:create"
	DepotsUpdate = "depots:update"
	DepotsDelete = "depots:delete"

	EquipmentView   = "equipment:view"
	EquipmentCreate = "equipment:create"
	EquipmentUpdate = "equipment:update"
	EquipmentDelete = "equipment:delete"

	CustomersView   = "customers:view"
	CustomersCreate = "customers:create"
	CustomersUpdate = "customers:update"
	CustomersDelete = "customers:delete"

	InventoryView   = "inventory:view"
	InventoryCreate = "inventory:create"
	InventoryUpdate = "inventory:update"
	InventoryDelete = "inventory:delete"

	TransactionsView   = "transactions:view"
	TransactionsCreate = "transactions:create"
	TransactionsUpdate = "transactions:update"
	TransactionsDelete = "transactions:delete"
	TransactionsExport = "transactions:export"

	InvoicesView   = "invoices:view"
	InvoicesCreate = "invoices:create"
	InvoicesUpdate = "invoices:update"
	InvoicesDelete = "invoices:delete"
	InvoicesResend = "invoices:resend"

	DistributionsView    = "distributions:view"
	DistributionsCreate  = "distributions:create"
	DistributionsUpdate  = "distributions:update"
	DistributionsDelete  = "distributions:delete"
	DistributionsConfirm = "distributions:confirm"

	// The audit log is view-only. No create/update/delete permissions
	// exist for it, and the gatekeeper would refuse them anyway.
	AuditView = "audit:view"
)

// All lists every grantable permission, used by the seeders.
var All = []string{
	Superuser,
	UsersView, UsersCreate, UsersUpdate, UsersDelete,
	DepotsView, DepotsCreate, DepotsUpdate, DepotsDelete,
	EquipmentView, EquipmentCreate, EquipmentUpdate, EquipmentDelete,
	CustomersView, CustomersCreate, CustomersUpdate, CustomersDelete,
	InventoryView, InventoryCreate, InventoryUpdate, InventoryDelete,
	TransactionsView, TransactionsCreate, TransactionsUpdate, TransactionsDelete, TransactionsExport,
	InvoicesView, InvoicesCreate, InvoicesUpdate, InvoicesDelete, InvoicesResend,
	DistributionsView, DistributionsCreate, DistributionsUpdate, DistributionsDelete, DistributionsConfirm,
	AuditView,
}
