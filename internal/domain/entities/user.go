package entities

import (
	"errors"
	"time"

	"github.com/gamevault/gamevault-backend/internal/domain/valueobjects"
)

// UserStatus representa o estado de um usuário (soft delete via flag)
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// DefaultProfileImage é a imagem atribuída a usuários recém registrados
const DefaultProfileImage = "default_profile_picture.png"

// User representa um usuário da loja
type User struct {
	ID                string
	Email             valueobjects.Email
	Username          string
	Name              string
	PasswordHash      string
	Description       *string
	ProfileImage      string
	BannerImage       *string
	TokenConfirmation *string
	EmailVerified     *time.Time
	Status            UserStatus
	Role              Role
	BannedReason      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive verifica se o usuário não foi desativado (soft delete)
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Deactivate marca o usuário como inativo ao invés de removê-lo,
// preservando joins históricos de pedidos
func (u *User) Deactivate() {
	u.Status = UserStatusInactive
}

// Ban desativa o usuário registrando o motivo
func (u *User) Ban(reason string) {
	u.Status = UserStatusInactive
	u.BannedReason = &reason
}

// ConfirmEmail marca o email como verificado e limpa o token
func (u *User) ConfirmEmail(now time.Time) {
	u.EmailVerified = &now
	u.TokenConfirmation = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if u.Username == "" {
		return errors.New("username is required")
	}

	if u.Role != RoleAdmin && u.Role != RoleClient {
		return errors.New("invalid role")
	}

	return nil
}
