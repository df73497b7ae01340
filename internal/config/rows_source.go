package config

import (
	"net/url"
	"strings"
)

// RowsSource é a origem resolvida a partir do ambiente: a chave da API e a dica
// de localização da planilha (um ID extraído de URL e/ou um padrão de nome).
type RowsSource struct {
	APIKey        string
	SpreadsheetID string
	Pattern       string
}

// Source lê a configuração do Rows. O segundo retorno é false quando a chave ou
// a dica de localização não estão definidas, o que é um estado normal em
// desenvolvimento local e não um erro.
func (r Rows) Source() (RowsSource, bool) {
	apiKey := strings.TrimSpace(r.APIKey)
	if apiKey == "" {
		return RowsSource{}, false
	}

	hint := strings.TrimSpace(r.InstagramHint)
	if hint == "" {
		hint = strings.TrimSpace(r.SpreadsheetID)
		if hint == "" {
			return RowsSource{}, false
		}
		return RowsSource{APIKey: apiKey, SpreadsheetID: hint}, true
	}

	id, pattern := ParseSourceHint(hint)
	if id == "" && pattern == "" {
		return RowsSource{}, false
	}

	return RowsSource{
		APIKey:        apiKey,
		SpreadsheetID: id,
		Pattern:       pattern,
	}, true
}

// ParseSourceHint interpreta a dica de localização. Aceita:
//
//	https://api.rows.com/v1/spreadsheets/<id>/...  -> id
//	https://rows.com/<workspace>/<folder>/<slug>-<id> -> id e slug como padrão
//	texto livre -> padrão de nome
func ParseSourceHint(hint string) (spreadsheetID, pattern string) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return "", ""
	}

	if !strings.HasPrefix(hint, "http://") && !strings.HasPrefix(hint, "https://") {
		return "", hint
	}

	u, err := url.Parse(hint)
	if err != nil {
		return "", ""
	}

	segments := make([]string, 0)
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return "", ""
	}

	for i, s := range segments {
		if s == "spreadsheets" && i+1 < len(segments) {
			return segments[i+1], ""
		}
	}

	last := segments[len(segments)-1]
	idx := strings.LastIndex(last, "-")
	if idx < 0 {
		return last, ""
	}

	slug := strings.ReplaceAll(last[:idx], "-", " ")
	return last[idx+1:], strings.TrimSpace(slug)
}
