package domain

import "time"

// SpreadsheetRef identifica uma planilha descoberta na API do Rows
type SpreadsheetRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TableRef identifica uma página/tabela dentro de uma planilha
type TableRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProbeOutcome é o resultado da última verificação agendada da origem
type ProbeOutcome struct {
	RunID     string     `json:"run_id"`
	Source    DataSource `json:"source"`
	Reason    string     `json:"reason,omitempty"`
	StartedAt time.Time  `json:"started_at"`
	Duration  string     `json:"duration"`
}

// SourceStatus descreve o estado da integração para operadores. DefaultPicks
// conta as descobertas que caíram no primeiro item por falta de correspondência.
type SourceStatus struct {
	Configured   bool            `json:"configured"`
	Connected    bool            `json:"connected"`
	Pattern      string          `json:"pattern,omitempty"`
	Spreadsheet  *SpreadsheetRef `json:"spreadsheet,omitempty"`
	Tables       []TableRef      `json:"tables,omitempty"`
	LastProbe    *ProbeOutcome   `json:"last_probe,omitempty"`
	DefaultPicks int64           `json:"default_picks"`
	Error        string          `json:"error,omitempty"`
}
