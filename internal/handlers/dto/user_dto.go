package dto

import (
	"time"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// UpdateUserRequest representa a requisição para atualizar o perfil
type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Username    *string `json:"username" binding:"omitempty,min=3,max=30"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// ChangePasswordRequest representa a requisição de troca de senha
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// BanUserRequest representa a requisição de banimento
type BanUserRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

// UserResponse representa a resposta de um usuário, sem o hash de senha
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	ProfileImage  string    `json:"profile_image"`
	BannerImage   *string   `json:"banner_image,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email.String(),
		Username:      user.Username,
		Name:          user.Name,
		Description:   user.Description,
		ProfileImage:  user.ProfileImage,
		BannerImage:   user.BannerImage,
		EmailVerified: user.EmailVerified != nil,
		Role:          string(user.Role),
		Status:        string(user.Status),
		CreatedAt:     user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
