package authenticating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Papéis emitidos pelo Supabase
const (
	RoleAuthenticated = "authenticated"
	RoleService       = "service_role"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks

type Authenticator interface {
	// Enabled informa se há segredo configurado; sem ele a API roda sem autenticação
	Enabled() bool
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) Authenticator {
	secret := strings.TrimSpace(cfg.Auth.Secret)
	if secret == "" {
		logrus.Warn("AUTH_SECRET não definido: rotas protegidas ficam abertas")
	}

	return &Service{secret: []byte(secret)}
}

func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

// ValidateToken valida um access token HS256 do Supabase e devolve suas claims
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != RoleAuthenticated && claims.Role != RoleService {
		return nil, ErrInsufficientPrivilege
	}

	return claims, nil
}
