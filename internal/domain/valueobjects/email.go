package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos
// e normalizados (minúsculos, sem espaços nas pontas)
type Email struct {
	value string
}

// NewEmail normaliza e valida o endereço informado
func NewEmail(raw string) (Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(raw))

	if len(normalized) < 3 || len(normalized) > 254 || !emailPattern.MatchString(normalized) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: normalized}, nil
}

// String retorna o valor normalizado do email
func (e Email) String() string {
	return e.value
}
