package authenticating

import (
	"errors"

	"github.com/orbicity/hotel-ops-api/pkg/apiErrors"
)

var (
	ErrMissingToken          = errors.New("token ausente")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

// APICode traduz um erro de autenticação para o código exposto pela API
func APICode(err error) string {
	switch {
	case errors.Is(err, ErrExpiredToken):
		return apiErrors.ErrExpiredToken
	case errors.Is(err, ErrInsufficientPrivilege):
		return apiErrors.ErrInsufficientPrivilege
	default:
		return apiErrors.ErrInvalidToken
	}
}
