package auth

import (
	"testing"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/domain/valueobjects"
)

func testUser(t *testing.T) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail("player@example.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}

	return &entities.User{
		ID:    "5b4c6a10-1111-4222-8333-444455556666",
		Email: email,
		Role:  entities.RoleClient,
	}
}

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", "1h")
	user := testUser(t)

	t.Run("token emitido carrega a identidade", func(t *testing.T) {
		token, err := issuer.Issue(user)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		principal, err := issuer.Parse(token)
		if err != nil {
			t.Fatalf("falha ao validar token: %v", err)
		}

		if principal.UserID != user.ID {
			t.Fatalf("esperava user id %s, obteve %s", user.ID, principal.UserID)
		}
		if principal.Email != "player@example.com" {
			t.Fatalf("esperava email do usuário, obteve %s", principal.Email)
		}
		if principal.Role != entities.RoleClient {
			t.Fatalf("esperava role client, obteve %s", principal.Role)
		}
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		other := NewJWTIssuer("other-secret", "1h")
		token, err := other.Issue(user)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		if _, err := issuer.Parse(token); err == nil {
			t.Fatal("token com assinatura errada deveria ser rejeitado")
		}
	})

	t.Run("token expirado é rejeitado", func(t *testing.T) {
		expired := NewJWTIssuer("test-secret", "1ns")
		token, err := expired.Issue(user)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		if _, err := expired.Parse(token); err == nil {
			t.Fatal("token expirado deveria ser rejeitado")
		}
	})

	t.Run("lixo não é um token válido", func(t *testing.T) {
		if _, err := issuer.Parse("not-a-token"); err == nil {
			t.Fatal("string arbitrária deveria ser rejeitada")
		}
	})
}

func TestNewJWTIssuer_DefaultExpiry(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", "bogus")
	if issuer.expiry.Hours() != 1 {
		t.Fatalf("esperava expiração padrão de 1h, obteve %s", issuer.expiry)
	}
}
