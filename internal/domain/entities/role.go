package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Catalog permissions
	PermissionCatalogWrite Permission = "catalog.write"

	// User permissions
	PermissionUserRead Permission = "users.read"
	PermissionUserBan  Permission = "users.ban"

	// Order permissions
	PermissionOrderReadAll Permission = "orders.read_all"
	PermissionOrderDeliver Permission = "orders.deliver"

	// Coupon permissions
	PermissionCouponWrite Permission = "coupons.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionCatalogWrite,
		PermissionUserRead,
		PermissionUserBan,
		PermissionOrderReadAll,
		PermissionOrderDeliver,
		PermissionCouponWrite,
	},
	RoleClient: {},
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
