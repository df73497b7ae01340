package rowsdomain

import (
	"errors"
	"fmt"
)

// ErrorKind classifica as falhas de transporte da API do Rows
type ErrorKind string

const (
	KindUnauthorized     ErrorKind = "unauthorized"
	KindNotFound         ErrorKind = "not_found"
	KindRateLimited      ErrorKind = "rate_limited"
	KindServerError      ErrorKind = "server_error"
	KindNetwork          ErrorKind = "network"
	KindMalformed        ErrorKind = "malformed"
	KindUnexpectedStatus ErrorKind = "unexpected_status"
)

var (
	// ErrDiscoveryFailed indica que nenhuma planilha ou tabela acessível foi encontrada
	ErrDiscoveryFailed = errors.New("discovery failed")
	// ErrShapeMismatch indica que o payload não corresponde a nenhuma estratégia de parsing
	ErrShapeMismatch = errors.New("shape mismatch")
)

// FetchError é o único tipo de erro devolvido pelo cliente HTTP
type FetchError struct {
	Kind     ErrorKind
	Endpoint string
	Status   int
	Detail   string
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("rows %s: %s (status %d): %s", e.Kind, e.Endpoint, e.Status, e.Detail)
	}
	return fmt.Sprintf("rows %s: %s: %s", e.Kind, e.Endpoint, e.Detail)
}

// Retryable informa se a falha pode ser repetida pelo próprio cliente
func (e *FetchError) Retryable() bool {
	return e.Kind == KindServerError || e.Kind == KindNetwork
}

// ErrorResponse é o corpo de erro devolvido pela API do Rows
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Reason reduz qualquer erro da integração ao rótulo exposto nos resultados de fallback
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return string(fetchErr.Kind)
	}

	switch {
	case errors.Is(err, ErrDiscoveryFailed):
		return "discovery_failed"
	case errors.Is(err, ErrShapeMismatch):
		return "shape_mismatch"
	}

	return "internal"
}

// KindForStatus mapeia um status HTTP não-2xx para o tipo de erro correspondente
func KindForStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindUnauthorized
	case status == 404:
		return KindNotFound
	case status == 429:
		return KindRateLimited
	case status >= 500:
		return KindServerError
	}
	return KindUnexpectedStatus
}
