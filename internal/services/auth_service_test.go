package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registro cria client ativo e dispara os dois emails", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		mailer := &mockMailer{}
		service := NewAuthService(userRepo, &mockIssuer{}, mailer, noopLogger{})

		userRepo.On("FindByEmail", ctx, "player@example.com").Return(nil, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return u.Role == entities.RoleClient &&
				u.Status == entities.UserStatusActive &&
				u.ProfileImage == entities.DefaultProfileImage &&
				u.TokenConfirmation != nil
		})).Return(nil)
		mailer.On("SendWelcome", "player@example.com", "Player One").Return()
		mailer.On("SendConfirmation", "player@example.com", "Player One", mock.Anything).Return()

		user, err := service.Register(ctx, RegisterInput{
			Email:    "player@example.com",
			Username: "player1",
			Name:     "Player One",
			Password: "super-secret-pw",
		})
		if err != nil {
			t.Fatalf("registro válido não deveria falhar: %v", err)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("super-secret-pw")); err != nil {
			t.Fatal("hash não corresponde à senha informada")
		}
		if len(*user.TokenConfirmation) != 60 {
			t.Fatalf("esperava token de confirmação de 60 caracteres, obteve %d", len(*user.TokenConfirmation))
		}
		mailer.AssertNumberOfCalls(t, "SendWelcome", 1)
		mailer.AssertNumberOfCalls(t, "SendConfirmation", 1)
	})

	t.Run("email duplicado vira conflito sem segunda criação", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		mailer := &mockMailer{}
		service := NewAuthService(userRepo, &mockIssuer{}, mailer, noopLogger{})

		userRepo.On("FindByEmail", ctx, "player@example.com").Return(testUser(t), nil)

		_, err := service.Register(ctx, RegisterInput{
			Email:    "player@example.com",
			Username: "player1",
			Name:     "Player One",
			Password: "super-secret-pw",
		})

		if !errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			t.Fatalf("esperava ErrEmailAlreadyExists, obteve %v", err)
		}
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashedUser := func(t *testing.T, password string) *entities.User {
		t.Helper()
		user := testUser(t)
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			t.Fatalf("falha ao gerar hash: %v", err)
		}
		user.PasswordHash = string(hash)
		return user
	}

	t.Run("credenciais corretas devolvem usuário e token", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		issuer := &mockIssuer{}
		service := NewAuthService(userRepo, issuer, &mockMailer{}, noopLogger{})

		user := hashedUser(t, "super-secret-pw")
		userRepo.On("FindByEmail", ctx, "player@example.com").Return(user, nil)
		issuer.On("Issue", user).Return("signed-token", nil)

		got, token, err := service.Login(ctx, "player@example.com", "super-secret-pw")
		if err != nil {
			t.Fatalf("login válido não deveria falhar: %v", err)
		}
		if got.ID != user.ID {
			t.Fatalf("esperava usuário %s, obteve %s", user.ID, got.ID)
		}
		if token != "signed-token" {
			t.Fatalf("esperava token assinado, obteve %q", token)
		}
	})

	t.Run("email desconhecido é not-found, não credencial inválida", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		service := NewAuthService(userRepo, &mockIssuer{}, &mockMailer{}, noopLogger{})

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, _, err := service.Login(ctx, "ghost@example.com", "whatever")
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Fatalf("esperava ErrUserNotFound, obteve %v", err)
		}
	})

	t.Run("senha errada em conta existente é credencial inválida", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		service := NewAuthService(userRepo, &mockIssuer{}, &mockMailer{}, noopLogger{})

		userRepo.On("FindByEmail", ctx, "player@example.com").
			Return(hashedUser(t, "super-secret-pw"), nil)

		_, _, err := service.Login(ctx, "player@example.com", "wrong-password")
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Fatalf("esperava ErrInvalidCredentials, obteve %v", err)
		}
	})

	t.Run("conta desativada não loga", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		service := NewAuthService(userRepo, &mockIssuer{}, &mockMailer{}, noopLogger{})

		user := hashedUser(t, "super-secret-pw")
		user.Deactivate()
		userRepo.On("FindByEmail", ctx, "player@example.com").Return(user, nil)

		_, _, err := service.Login(ctx, "player@example.com", "super-secret-pw")
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Fatalf("esperava ErrInvalidCredentials, obteve %v", err)
		}
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("token válido confirma e limpa o token", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		service := NewAuthService(userRepo, &mockIssuer{}, &mockMailer{}, noopLogger{})

		token := "abc123"
		user := testUser(t)
		user.TokenConfirmation = &token

		userRepo.On("FindByConfirmationToken", ctx, token).Return(user, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return u.EmailVerified != nil && u.TokenConfirmation == nil
		})).Return(nil)

		if err := service.VerifyEmail(ctx, token); err != nil {
			t.Fatalf("confirmação válida não deveria falhar: %v", err)
		}
	})

	t.Run("token desconhecido é rejeitado", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		service := NewAuthService(userRepo, &mockIssuer{}, &mockMailer{}, noopLogger{})

		userRepo.On("FindByConfirmationToken", ctx, "bogus").Return(nil, nil)

		if err := service.VerifyEmail(ctx, "bogus"); !errors.Is(err, domainerrors.ErrInvalidToken) {
			t.Fatalf("esperava ErrInvalidToken, obteve %v", err)
		}
	})
}
