package errors

import "errors"

// Business errors comparados com errors.Is na borda HTTP
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid confirmation token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryReferenced = errors.New("category is still referenced by products")
	ErrOutOfStock         = errors.New("product is out of stock")

	ErrCartItemNotFound = errors.New("product is not in the cart")

	ErrOrderNotFound = errors.New("order not found")

	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon is expired")
	ErrCouponInactive = errors.New("coupon is not active")

	ErrImageNotFound = errors.New("image not found")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// O domínio base vem de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)
