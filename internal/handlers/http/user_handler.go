package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/handlers/middleware"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe retorna o usuário autenticado
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários com paginação por keyset
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, err := h.userService.ListUsers(c.Request.Context(), stringCursor(c), pageLimit(c))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageResponse[dto.UserResponse, string]{
		Data:       dto.ToUserResponses(page.Data),
		NextCursor: page.NextCursor,
	})
}

// UpdateMe atualiza o perfil do usuário autenticado
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, services.UpdateProfileInput{
		Name:        req.Name,
		Username:    req.Username,
		Description: req.Description,
	})
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword troca a senha do usuário autenticado
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password changed successfully"})
}

// DeleteMe desativa a conta do usuário autenticado (soft delete)
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.userService.DeactivateUser(c.Request.Context(), userID); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "account deactivated"})
}

// BanUser desativa um usuário com motivo (admin)
func (h *UserHandler) BanUser(c *gin.Context) {
	var req dto.BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	if err := h.userService.BanUser(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user banned"})
}

// UploadProfileImage sobe a foto de perfil do usuário autenticado
func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		dto.BadRequestResponse(c, "a file is required")
		return
	}
	if err := validateImageFile(file); err != nil {
		dto.BadRequestResponse(c, err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	user, err := h.userService.UploadProfileImage(c.Request.Context(), userID, file)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UploadBannerImage sobe o banner do usuário autenticado
func (h *UserHandler) UploadBannerImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		dto.BadRequestResponse(c, "a file is required")
		return
	}
	if err := validateImageFile(file); err != nil {
		dto.BadRequestResponse(c, err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	user, err := h.userService.UploadBannerImage(c.Request.Context(), userID, file)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
