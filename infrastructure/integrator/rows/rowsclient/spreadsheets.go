package rowsclient

import (
	"context"
	"fmt"
	"net/url"

	rowsdomain "github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/domain"
)

// ListSpreadsheets lista as planilhas acessíveis com a chave configurada
func (c *RowsClient) ListSpreadsheets(ctx context.Context) ([]rowsdomain.Spreadsheet, error) {
	var response rowsdomain.ResponseSpreadsheets
	if err := c.get(ctx, "/spreadsheets", &response); err != nil {
		return nil, err
	}

	for i := range response.Items {
		if response.Items[i].Name == "" {
			response.Items[i].Name = "Untitled"
		}
	}

	return response.Items, nil
}

// GetSpreadsheet obtém os metadados da planilha, incluindo as páginas/tabelas
func (c *RowsClient) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*rowsdomain.ResponseSpreadsheet, error) {
	var response rowsdomain.ResponseSpreadsheet
	path := fmt.Sprintf("/spreadsheets/%s", url.PathEscape(spreadsheetID))
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	if response.ID == "" {
		response.ID = spreadsheetID
	}

	return &response, nil
}

// GetTableValues obtém as células brutas de uma tabela, no formato que a API devolver
func (c *RowsClient) GetTableValues(ctx context.Context, spreadsheetID, tableID string) (rowsdomain.Payload, error) {
	var response rowsdomain.Payload
	path := fmt.Sprintf("/spreadsheets/%s/tables/%s/values", url.PathEscape(spreadsheetID), url.PathEscape(tableID))
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	if response == nil {
		return nil, &rowsdomain.FetchError{
			Kind:     rowsdomain.KindMalformed,
			Endpoint: path,
			Detail:   "corpo vazio",
		}
	}

	return response, nil
}
