// Package guard is the declarative access control table: one entry per
// operation mapping to the role set allowed to perform it. It is a pure
// predicate with no side effects — enforcement happens in middleware,
// role checks live only here.
package guard

import (
	"recolecta-api/apperr"
	"recolecta-api/models"
)

// Operation identifies an API operation for access control purposes.
type Operation string

const (
	OpRegister      Operation = "auth.register"
	OpLogin         Operation = "auth.login"
	OpProfile       Operation = "auth.profile"
	OpCatalog       Operation = "products.catalog"
	OpProductDetail Operation = "products.detail"
	OpLifecycleInfo Operation = "products.lifecycle"
	OpCreateProduct Operation = "products.create"
	OpListOwned     Operation = "products.list_owned"
	OpUpdateProduct Operation = "products.update"
	OpApprove       Operation = "products.approve"
	OpPublish       Operation = "products.publish"
	OpTraceability  Operation = "products.traceability"
	OpPlaceOrder    Operation = "orders.place"
	OpListOwnOrders Operation = "orders.list_own"
	OpAdminProducts Operation = "admin.products"
	OpAdminOrders   Operation = "admin.orders"
	OpAdminUsers    Operation = "admin.users"
)

// publicOps require no credential at all.
var publicOps = map[Operation]bool{
	OpRegister:      true,
	OpLogin:         true,
	OpCatalog:       true,
	OpProductDetail: true,
	OpLifecycleInfo: true,
}

// anyAuthOps require a valid credential but accept every role.
var anyAuthOps = map[Operation]bool{
	OpProfile: true,
}

// rules maps each remaining operation to its allowed role set.
var rules = map[Operation][]models.UserRole{
	OpCreateProduct: {models.RoleCollector},
	OpListOwned:     {models.RoleCollector},
	OpPublish:       {models.RoleCollector},
	OpTraceability:  {models.RoleCollector},
	OpUpdateProduct: {models.RoleCollector, models.RoleAdmin},
	OpApprove:       {models.RoleAdmin},
	OpAdminProducts: {models.RoleAdmin},
	OpAdminOrders:   {models.RoleAdmin},
	OpAdminUsers:    {models.RoleAdmin},
	OpPlaceOrder:    {models.RoleBuyer},
	OpListOwnOrders: {models.RoleBuyer},
}

// IsPublic reports whether op needs no authentication.
func IsPublic(op Operation) bool {
	return publicOps[op]
}

// AllowedRoles returns the role set permitted for op, nil for public or
// any-authenticated operations.
func AllowedRoles(op Operation) []models.UserRole {
	return rules[op]
}

// Check decides whether a caller may perform op. authenticated reports
// whether a valid credential was presented; role is the caller's role
// when authenticated. Unknown operations are denied.
func Check(op Operation, authenticated bool, role models.UserRole) error {
	if publicOps[op] {
		return nil
	}
	if !authenticated {
		return apperr.Auth("Authentication required")
	}
	if anyAuthOps[op] {
		return nil
	}
	for _, allowed := range rules[op] {
		if role == allowed {
			return nil
		}
	}
	return apperr.Forbidden("Access denied for role " + string(role))
}
