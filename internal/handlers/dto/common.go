package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
)

// FieldIssue é um erro de validação de um campo do corpo da requisição
type FieldIssue struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationProblem estende o problem document RFC 7807 com a lista
// estruturada de erros de campo
type ValidationProblem struct {
	problems.DefaultProblem
	Errors []FieldIssue `json:"errors,omitempty"`
}

// newProblem monta um problem document com o tipo absoluto derivado da
// base URL configurada (middleware grava "base_url" no contexto)
func newProblem(c *gin.Context, problemType, title string, status int, detail string) problems.DefaultProblem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return problems.DefaultProblem{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}
}

// respondProblem escreve o problem document com o media type RFC 7807
func respondProblem(c *gin.Context, status int, body any) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.Abort()
	c.JSON(status, body)
}

// ValidationResponse responde 400 com a lista de erros de campo extraída
// do erro de binding do gin
func ValidationResponse(c *gin.Context, err error) {
	problem := ValidationProblem{
		DefaultProblem: newProblem(c,
			domainerrors.ProblemTypeValidation,
			"Validation Failed",
			http.StatusBadRequest,
			"The request body failed validation",
		),
		Errors: fieldIssues(err),
	}
	respondProblem(c, http.StatusBadRequest, problem)
}

func fieldIssues(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fe.Error(),
		})
	}
	return issues
}

// NotFoundResponse responde 404
func NotFoundResponse(c *gin.Context, detail string) {
	respondProblem(c, http.StatusNotFound, newProblem(c,
		domainerrors.ProblemTypeNotFound, "Not Found", http.StatusNotFound, detail))
}

// ConflictResponse responde 409
func ConflictResponse(c *gin.Context, detail string) {
	respondProblem(c, http.StatusConflict, newProblem(c,
		domainerrors.ProblemTypeConflict, "Conflict", http.StatusConflict, detail))
}

// BadRequestResponse responde 400 sem lista de campos
func BadRequestResponse(c *gin.Context, detail string) {
	respondProblem(c, http.StatusBadRequest, newProblem(c,
		domainerrors.ProblemTypeBadRequest, "Bad Request", http.StatusBadRequest, detail))
}

// UnauthorizedResponse responde 401
func UnauthorizedResponse(c *gin.Context) {
	respondProblem(c, http.StatusUnauthorized, newProblem(c,
		domainerrors.ProblemTypeUnauthorized, "Unauthorized", http.StatusUnauthorized,
		"Authentication is required to access this resource"))
}

// ForbiddenResponse responde 403
func ForbiddenResponse(c *gin.Context) {
	respondProblem(c, http.StatusForbidden, newProblem(c,
		domainerrors.ProblemTypeForbidden, "Forbidden", http.StatusForbidden,
		"You do not have permission to access this resource"))
}

// InternalErrorResponse responde 500 sem vazar detalhes internos
func InternalErrorResponse(c *gin.Context) {
	respondProblem(c, http.StatusInternalServerError, newProblem(c,
		domainerrors.ProblemTypeInternal, "Internal Server Error",
		http.StatusInternalServerError, "An unexpected error occurred"))
}

// DomainErrorResponse mapeia erros de negócio conhecidos para o status
// HTTP correspondente; o que não for reconhecido vira 500
func DomainErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrUserNotFound),
		errors.Is(err, domainerrors.ErrProductNotFound),
		errors.Is(err, domainerrors.ErrCategoryNotFound),
		errors.Is(err, domainerrors.ErrCartItemNotFound),
		errors.Is(err, domainerrors.ErrOrderNotFound),
		errors.Is(err, domainerrors.ErrCouponNotFound),
		errors.Is(err, domainerrors.ErrImageNotFound):
		NotFoundResponse(c, err.Error())
	case errors.Is(err, domainerrors.ErrEmailAlreadyExists),
		errors.Is(err, domainerrors.ErrCategoryReferenced):
		ConflictResponse(c, err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrInvalidToken),
		errors.Is(err, domainerrors.ErrUnauthorized):
		UnauthorizedResponse(c)
	case errors.Is(err, domainerrors.ErrForbidden):
		ForbiddenResponse(c)
	case errors.Is(err, domainerrors.ErrOutOfStock),
		errors.Is(err, domainerrors.ErrCouponExpired),
		errors.Is(err, domainerrors.ErrCouponInactive):
		BadRequestResponse(c, err.Error())
	default:
		InternalErrorResponse(c)
	}
}
