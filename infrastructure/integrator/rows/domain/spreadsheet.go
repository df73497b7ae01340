package rowsdomain

import "sort"

// Payload é o objeto JSON decodificado de uma resposta da API
type Payload map[string]interface{}

// Keys devolve as chaves de topo, ordenadas, para logs de diagnóstico
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Spreadsheet é um item de GET /spreadsheets
type Spreadsheet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Table é uma página/tabela dentro dos metadados da planilha
type Table struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Tables []Table `json:"tables"`
}

// ResponseSpreadsheets é o corpo de GET /spreadsheets
type ResponseSpreadsheets struct {
	Items []Spreadsheet `json:"items"`
}

// ResponseSpreadsheet é o corpo de GET /spreadsheets/{id}. A API já devolveu
// as páginas em "pages", "tables" ou "sheets", conforme a versão.
type ResponseSpreadsheet struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Pages  []Table `json:"pages"`
	Tables []Table `json:"tables"`
	Sheets []Table `json:"sheets"`
}

// AllTables achata a lista de páginas preservando a ordem devolvida pela API.
// Uma página com tabelas aninhadas é substituída pelas suas tabelas, que herdam
// o nome da página quando não têm nome próprio.
func (r ResponseSpreadsheet) AllTables() []Table {
	out := make([]Table, 0)
	seen := make(map[string]bool)

	var add func(list []Table, parentName string)
	add = func(list []Table, parentName string) {
		for _, t := range list {
			name := t.Name
			if name == "" {
				name = parentName
			}
			if len(t.Tables) > 0 {
				add(t.Tables, name)
				continue
			}
			if t.ID != "" && !seen[t.ID] {
				seen[t.ID] = true
				out = append(out, Table{ID: t.ID, Name: name})
			}
		}
	}

	add(r.Pages, "")
	add(r.Tables, "")
	add(r.Sheets, "")

	return out
}
