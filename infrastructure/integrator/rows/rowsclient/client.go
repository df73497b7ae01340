package rowsclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	rowsdomain "github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/domain"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	ListSpreadsheets(ctx context.Context) ([]rowsdomain.Spreadsheet, error)
	GetSpreadsheet(ctx context.Context, spreadsheetID string) (*rowsdomain.ResponseSpreadsheet, error)
	GetTableValues(ctx context.Context, spreadsheetID, tableID string) (rowsdomain.Payload, error)
}

type RowsClient struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	maxRetries   int
	retryBackoff time.Duration
}

// NewClient cria o cliente autenticado da API do Rows
func NewClient(cfg *config.Config) Client {
	return &RowsClient{
		httpClient: &http.Client{
			Timeout: cfg.Rows.RequestTimeout,
		},
		baseURL:      strings.TrimRight(cfg.Rows.BaseURL, "/"),
		apiKey:       cfg.Rows.APIKey,
		maxRetries:   cfg.Rows.MaxRetries,
		retryBackoff: cfg.Rows.RetryBackoff,
	}
}

// get executa um GET autenticado e decodifica o corpo em out. Qualquer falha é
// devolvida como *rowsdomain.FetchError.
func (c *RowsClient) get(ctx context.Context, path string, out interface{}) error {
	var lastErr *rowsdomain.FetchError

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.retryBackoff * time.Duration(attempt)
			logrus.WithFields(logrus.Fields{
				"endpoint": path,
				"attempt":  attempt,
				"kind":     lastErr.Kind,
				"wait":     wait.String(),
			}).Warn("rows: retrying request")

			select {
			case <-ctx.Done():
				return c.networkError(path, ctx.Err())
			case <-time.After(wait):
			}
		}

		lastErr = c.do(ctx, http.MethodGet, path, out)
		if lastErr == nil {
			return nil
		}
		if !lastErr.Retryable() || ctx.Err() != nil {
			break
		}
	}

	return lastErr
}

func (c *RowsClient) do(ctx context.Context, method, path string, out interface{}) (fetchErr *rowsdomain.FetchError) {
	defer func() {
		if r := recover(); r != nil {
			fetchErr = &rowsdomain.FetchError{
				Kind:     rowsdomain.KindNetwork,
				Endpoint: path,
				Detail:   "panic during request",
			}
		}
	}()

	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return c.networkError(path, errors.Wrap(err, "erro ao criar a requisição"))
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": path,
		"api_key":  utils.MaskSecret(c.apiKey),
	}).Debug("rows: sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.networkError(path, errors.Wrap(err, "erro ao executar a requisição"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.networkError(path, errors.Wrap(err, "erro ao ler resposta"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &rowsdomain.FetchError{
			Kind:     rowsdomain.KindForStatus(resp.StatusCode),
			Endpoint: path,
			Status:   resp.StatusCode,
			Detail:   errorDetail(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &rowsdomain.FetchError{
			Kind:     rowsdomain.KindMalformed,
			Endpoint: path,
			Status:   resp.StatusCode,
			Detail:   errors.Wrap(err, "erro ao decodificar JSON").Error(),
		}
	}

	return nil
}

func (c *RowsClient) networkError(path string, err error) *rowsdomain.FetchError {
	return &rowsdomain.FetchError{
		Kind:     rowsdomain.KindNetwork,
		Endpoint: path,
		Detail:   err.Error(),
	}
}

// errorDetail extrai a mensagem do corpo de erro, limitada a 200 caracteres
func errorDetail(body []byte) string {
	var errResp rowsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}

	detail := strings.TrimSpace(string(body))
	if len(detail) > 200 {
		detail = detail[:200]
	}
	return detail
}
