package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/orbicity/hotel-ops-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims domain.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(role string, expiresIn time.Duration) domain.Claims {
	return domain.Claims{
		Email: "ops@orbicity.ge",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "5b0c3b1e-1d55-4d5e-9d0b-7b1f3f3a9c11",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(&config.Config{Auth: config.Auth{Secret: testSecret}})
	require.True(t, service.Enabled())

	tests := []struct {
		name    string
		token   string
		wantErr error
		code    string
	}{
		{
			name:  "token válido",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(RoleAuthenticated, time.Hour)),
		},
		{
			name:  "service role",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(RoleService, time.Hour)),
		},
		{
			name:    "token ausente",
			token:   "",
			wantErr: ErrMissingToken,
			code:    apiErrors.ErrInvalidToken,
		},
		{
			name:    "token expirado",
			token:   sign(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(RoleAuthenticated, -time.Hour)),
			wantErr: ErrExpiredToken,
			code:    apiErrors.ErrExpiredToken,
		},
		{
			name:    "assinatura com outro segredo",
			token:   sign(t, jwt.SigningMethodHS256, []byte("another-secret"), claimsFor(RoleAuthenticated, time.Hour)),
			wantErr: ErrInvalidToken,
			code:    apiErrors.ErrInvalidToken,
		},
		{
			name:    "algoritmo diferente de HS256",
			token:   sign(t, jwt.SigningMethodHS512, []byte(testSecret), claimsFor(RoleAuthenticated, time.Hour)),
			wantErr: ErrInvalidToken,
			code:    apiErrors.ErrInvalidToken,
		},
		{
			name:    "papel anônimo",
			token:   sign(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("anon", time.Hour)),
			wantErr: ErrInsufficientPrivilege,
			code:    apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:    "lixo",
			token:   "not.a.jwt",
			wantErr: ErrInvalidToken,
			code:    apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, tt.code, APICode(err))
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ops@orbicity.ge", claims.Email)
			assert.Equal(t, "5b0c3b1e-1d55-4d5e-9d0b-7b1f3f3a9c11", claims.Subject)
		})
	}
}

func TestService_Disabled(t *testing.T) {
	service := NewService(&config.Config{})
	assert.False(t, service.Enabled())
}
