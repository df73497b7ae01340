package rows

import (
	"sync"

	"github.com/orbicity/hotel-ops-api/internal/domain"
)

// ResolutionCache memoriza a descoberta de planilhas e tabelas durante a vida do
// processo. Cada chave é escrita no máximo uma vez e nunca é invalidada: renomear
// recursos no Rows exige reiniciar o processo.
type ResolutionCache struct {
	spreadsheets sync.Map // chave lógica -> domain.SpreadsheetRef
	tables       sync.Map // ID da planilha -> []domain.TableRef
}

func NewResolutionCache() *ResolutionCache {
	return &ResolutionCache{}
}

func (c *ResolutionCache) Spreadsheet(key string) (domain.SpreadsheetRef, bool) {
	v, ok := c.spreadsheets.Load(key)
	if !ok {
		return domain.SpreadsheetRef{}, false
	}
	return v.(domain.SpreadsheetRef), true
}

// StoreSpreadsheet grava a referência apenas se a chave ainda estiver vazia e
// devolve o valor que ficou no cache.
func (c *ResolutionCache) StoreSpreadsheet(key string, ref domain.SpreadsheetRef) domain.SpreadsheetRef {
	v, _ := c.spreadsheets.LoadOrStore(key, ref)
	return v.(domain.SpreadsheetRef)
}

// Tables devolve uma cópia da lista para que o chamador não altere o cache
func (c *ResolutionCache) Tables(spreadsheetID string) ([]domain.TableRef, bool) {
	v, ok := c.tables.Load(spreadsheetID)
	if !ok {
		return nil, false
	}
	stored := v.([]domain.TableRef)
	out := make([]domain.TableRef, len(stored))
	copy(out, stored)
	return out, true
}

func (c *ResolutionCache) StoreTables(spreadsheetID string, tables []domain.TableRef) []domain.TableRef {
	stored := make([]domain.TableRef, len(tables))
	copy(stored, tables)
	v, _ := c.tables.LoadOrStore(spreadsheetID, stored)
	return v.([]domain.TableRef)
}
