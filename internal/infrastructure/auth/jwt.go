package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
)

// Claims carrega as claims padrão e as específicas da loja
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implementa ports.TokenIssuer com HS256
type JWTIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewJWTIssuer cria um emissor de tokens. expiry inválido cai em 1 hora,
// a expiração configurada globalmente pelo sistema original.
func NewJWTIssuer(secret string, expiry string) *JWTIssuer {
	d, err := time.ParseDuration(expiry)
	if err != nil || d <= 0 {
		d = time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), expiry: d}
}

func (i *JWTIssuer) Issue(user *entities.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
			Issuer:    "gamevault-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *JWTIssuer) Parse(tokenString string) (*ports.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &ports.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   entities.Role(claims.Role),
	}, nil
}
