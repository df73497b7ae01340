package utils

// MaskSecret devolve uma prévia da chave (10 primeiros e 4 últimos caracteres)
// para aparecer em logs sem expor o valor completo.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 14 {
		return "***"
	}
	return secret[:10] + "..." + secret[len(secret)-4:]
}
