package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
	"github.com/gamevault/gamevault-backend/internal/domain/valueobjects"
)

const bcryptCost = 10

// AuthService contém a lógica de registro e autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	issuer   ports.TokenIssuer
	mailer   ports.Mailer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	issuer ports.TokenIssuer,
	mailer ports.Mailer,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
		mailer:   mailer,
		logger:   logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Email    string
	Username string
	Name     string
	Password string
}

// Register cria um novo usuário com role client. Os emails de boas-vindas
// e de confirmação são disparados de forma assíncrona e nunca fazem o
// registro falhar.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	s.logger.Info("registering user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	token, err := confirmationToken()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:                uuid.NewString(),
		Email:             email,
		Username:          input.Username,
		Name:              input.Name,
		PasswordHash:      string(hash),
		ProfileImage:      entities.DefaultProfileImage,
		TokenConfirmation: &token,
		Status:            entities.UserStatusActive,
		Role:              entities.RoleClient,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.mailer.SendWelcome(user.Email.String(), user.Name)
	s.mailer.SendConfirmation(user.Email.String(), user.Name, token)

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login autentica por email e senha e emite o token de acesso.
// Email inexistente é not-found; senha incorreta e conta desativada
// são credenciais inválidas.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domainerrors.ErrUserNotFound
	}

	if !user.IsActive() {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// VerifyEmail confirma a conta associada ao token de confirmação
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByConfirmationToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return domainerrors.ErrInvalidToken
	}

	user.ConfirmEmail(time.Now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("email verified", "user_id", user.ID)
	return nil
}

// confirmationToken gera o token hex de 60 caracteres persistido no usuário
func confirmationToken() (string, error) {
	buf := make([]byte, 30)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
