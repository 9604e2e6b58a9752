package services

import (
	"context"
	"mime/multipart"

	"golang.org/x/crypto/bcrypt"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	storage  ports.FileStorage
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	storage ports.FileStorage,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com paginação por keyset
func (s *UserService) ListUsers(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.User, string], error) {
	return s.userRepo.List(ctx, cursor, limit)
}

// UpdateProfileInput representa os campos editáveis do perfil
type UpdateProfileInput struct {
	Name        *string
	Username    *string
	Description *string
}

// UpdateProfile atualiza os campos de perfil informados
func (s *UserService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Description != nil {
		user.Description = input.Description
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user profile updated", "user_id", user.ID)
	return user, nil
}

// ChangePassword troca a senha após verificar a atual
func (s *UserService) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user password changed", "user_id", user.ID)
	return nil
}

// DeactivateUser marca o usuário como inativo (soft delete)
func (s *UserService) DeactivateUser(ctx context.Context, id string) error {
	if err := s.userRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deactivated", "user_id", id)
	return nil
}

// BanUser desativa o usuário registrando o motivo do banimento
func (s *UserService) BanUser(ctx context.Context, id, reason string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	user.Ban(reason)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user banned", "user_id", id, "reason", reason)
	return nil
}

// UploadProfileImage sobe a foto de perfil e grava a URL no usuário
func (s *UserService) UploadProfileImage(ctx context.Context, id string, file *multipart.FileHeader) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := s.storage.Upload(ctx, file)
	if err != nil {
		return nil, err
	}

	user.ProfileImage = stored.SecureURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadBannerImage sobe o banner do perfil e grava a URL no usuário
func (s *UserService) UploadBannerImage(ctx context.Context, id string, file *multipart.FileHeader) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := s.storage.Upload(ctx, file)
	if err != nil {
		return nil, err
	}

	user.BannerImage = &stored.SecureURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
