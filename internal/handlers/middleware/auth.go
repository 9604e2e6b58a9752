package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
)

const (
	// ContextUserID é a chave do id do usuário autenticado no contexto gin
	ContextUserID = "user_id"
	// ContextRole é a chave do papel do usuário autenticado
	ContextRole = "role"
)

// RequireAuth valida o Bearer token e grava a identidade no contexto
func RequireAuth(issuer ports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalFrom(c, issuer)
		if !ok {
			dto.UnauthorizedResponse(c)
			return
		}

		c.Set(ContextUserID, principal.UserID)
		c.Set(ContextRole, string(principal.Role))
		c.Next()
	}
}

// RequirePermission exige um token válido cujo papel carregue a
// permissão informada (entities.RolePermissions)
func RequirePermission(issuer ports.TokenIssuer, permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalFrom(c, issuer)
		if !ok {
			dto.UnauthorizedResponse(c)
			return
		}

		if !principal.Role.HasPermission(permission) {
			dto.ForbiddenResponse(c)
			return
		}

		c.Set(ContextUserID, principal.UserID)
		c.Set(ContextRole, string(principal.Role))
		c.Next()
	}
}

// principalFrom extrai e valida o token do header Authorization.
// Conexões websocket não conseguem mandar headers, então o token também
// é aceito via query string.
func principalFrom(c *gin.Context, issuer ports.TokenIssuer) (*ports.Principal, bool) {
	token := ""

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	} else if q := c.Query("token"); q != "" {
		token = q
	}

	if token == "" {
		return nil, false
	}

	principal, err := issuer.Parse(token)
	if err != nil {
		return nil, false
	}
	return principal, true
}

// BaseURL grava a base URL configurada para os problem types RFC 7807
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("base_url", baseURL)
		c.Next()
	}
}
