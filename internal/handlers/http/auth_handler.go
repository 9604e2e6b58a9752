package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// AuthHandler lida com registro, login e confirmação de email
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register registra um novo usuário
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	_, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user registered successfully"})
}

// Login autentica por email e senha
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// VerifyEmail confirma a conta associada ao token enviado por email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("token")

	if err := h.authService.VerifyEmail(c.Request.Context(), token); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "email verified successfully"})
}
