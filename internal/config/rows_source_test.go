package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSourceHint(t *testing.T) {
	tests := []struct {
		name        string
		hint        string
		wantID      string
		wantPattern string
	}{
		{
			name:        "texto livre vira padrão de nome",
			hint:        "instagram",
			wantPattern: "instagram",
		},
		{
			name:   "URL da API com spreadsheets",
			hint:   "https://api.rows.com/v1/spreadsheets/5HGcWJFcQVVAv4mNTYb2RS/tables/abc/values",
			wantID: "5HGcWJFcQVVAv4mNTYb2RS",
		},
		{
			name:        "URL do app com slug",
			hint:        "https://rows.com/orbicity/marketing/instagram-page-analytics-5HGcWJFcQVVAv4mNTYb2RS",
			wantID:      "5HGcWJFcQVVAv4mNTYb2RS",
			wantPattern: "instagram page analytics",
		},
		{
			name:   "URL sem slug",
			hint:   "https://rows.com/orbicity/abc123",
			wantID: "abc123",
		},
		{
			name: "URL sem caminho",
			hint: "https://rows.com/",
		},
		{
			name: "vazio",
			hint: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, pattern := ParseSourceHint(tt.hint)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantPattern, pattern)
		})
	}
}

func TestRows_Source(t *testing.T) {
	t.Run("sem chave é não configurado", func(t *testing.T) {
		_, ok := Rows{InstagramHint: "instagram"}.Source()
		assert.False(t, ok)
	})

	t.Run("sem dica é não configurado", func(t *testing.T) {
		_, ok := Rows{APIKey: "rows_key_123"}.Source()
		assert.False(t, ok)
	})

	t.Run("ID legado da planilha", func(t *testing.T) {
		src, ok := Rows{APIKey: "rows_key_123", SpreadsheetID: "x1"}.Source()
		assert.True(t, ok)
		assert.Equal(t, "x1", src.SpreadsheetID)
		assert.Empty(t, src.Pattern)
	})

	t.Run("dica tem prioridade sobre o ID legado", func(t *testing.T) {
		src, ok := Rows{APIKey: "rows_key_123", InstagramHint: "Instagram", SpreadsheetID: "x1"}.Source()
		assert.True(t, ok)
		assert.Equal(t, "Instagram", src.Pattern)
		assert.Empty(t, src.SpreadsheetID)
		assert.Equal(t, "rows_key_123", src.APIKey)
	})
}
