package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims dos access tokens emitidos pelo Supabase para o painel
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
