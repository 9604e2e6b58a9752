package entities

import "testing"

func TestRole_HasPermission(t *testing.T) {
	t.Run("admin carrega todas as permissões administrativas", func(t *testing.T) {
		for _, p := range []Permission{
			PermissionCatalogWrite,
			PermissionUserRead,
			PermissionUserBan,
			PermissionOrderReadAll,
			PermissionOrderDeliver,
			PermissionCouponWrite,
		} {
			if !RoleAdmin.HasPermission(p) {
				t.Fatalf("admin deveria ter %s", p)
			}
		}
	})

	t.Run("client não tem permissão administrativa", func(t *testing.T) {
		if RoleClient.HasPermission(PermissionCatalogWrite) {
			t.Fatal("client não deveria escrever no catálogo")
		}
	})

	t.Run("role desconhecido não tem permissão alguma", func(t *testing.T) {
		if Role("ghost").HasPermission(PermissionUserRead) {
			t.Fatal("role desconhecido não deveria ter permissão")
		}
	})
}
