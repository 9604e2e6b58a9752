package ports

import "github.com/gamevault/gamevault-backend/internal/domain/entities"

// TokenIssuer emite e valida tokens de sessão
type TokenIssuer interface {
	Issue(user *entities.User) (string, error)
	Parse(token string) (*Principal, error)
}

// Principal é a identidade autenticada extraída de um token válido
type Principal struct {
	UserID string
	Email  string
	Role   entities.Role
}
