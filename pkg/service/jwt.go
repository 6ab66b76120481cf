package service

import (
	"errors"

	apperrors "printfront/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// SessionClaims : revendications portées par le jeton émis par le backend.
// L'authentification elle-même appartient au backend, on ne fait que lire.
type SessionClaims struct {
	UserID int    `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService interface {
	ParseToken(tokenString string) (*SessionClaims, error)
}

type jwtService struct {
	SecretKey string
}

func NewJWTService(secretKey string) JWTService {
	return &jwtService{SecretKey: secretKey}
}

func (service *jwtService) ParseToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(service.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
