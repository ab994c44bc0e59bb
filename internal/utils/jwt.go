package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/salusmind/psicossocial-api/internal/domain/entities"
)

// Claims são as claims carregadas no token de acesso da API
type Claims struct {
	UserID    string `json:"user_id"`
	EmpresaID string `json:"empresa_id,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken emite um JWT HS256 para o usuário autenticado
func GenerateToken(user *entities.User, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    user.ID,
		EmpresaID: user.EmpresaID,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("erro ao assinar token: %w", err)
	}
	return signed, nil
}

// ParseToken valida a assinatura e a expiração do token e devolve as claims
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token inválido")
	}
	return claims, nil
}
