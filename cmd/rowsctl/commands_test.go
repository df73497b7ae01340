package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRowsServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/spreadsheets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"a0","name":"Finance"},{"id":"x1","name":"Instagram Page Analytics"}]}`))
	})
	mux.HandleFunc("/spreadsheets/x1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"x1","name":"Instagram Page Analytics","pages":[
			{"id":"t1","name":"Metrics Overview"},
			{"id":"t2","name":"Posts"}
		]}`))
	})
	mux.HandleFunc("/spreadsheets/x1/tables/t1/values", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows":[{"Followers":"12,500","Engagement Rate":"4.2%"}]}`))
	})
	mux.HandleFunc("/spreadsheets/x1/tables/t2/values", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":[["Post ID","Caption","Likes","Type"],["p1","Café da manhã","120","REELS"],["p2","Piscina","80","IMAGE"]]}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	previous := loadConfig
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfig = previous })

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(append(args, "--source=", "--log-level=error"))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func rowsConfig(baseURL string) *config.Config {
	return &config.Config{Rows: config.Rows{
		APIKey:         "rows_live_abcdefghijklmnop",
		BaseURL:        baseURL,
		InstagramHint:  "Instagram",
		RequestTimeout: time.Second,
	}}
}

func TestMetricsCommand(t *testing.T) {
	srv := newRowsServer(t)

	out, err := execute(t, rowsConfig(srv.URL), "metrics")
	require.NoError(t, err)

	var result domain.MetricsResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.SourceLive, result.Source)
	assert.Equal(t, 12500, result.Data.Followers)
	assert.InDelta(t, 4.2, result.Data.Engagement, 0.001)
}

func TestMetricsCommand_Unconfigured(t *testing.T) {
	out, err := execute(t, &config.Config{}, "metrics")
	require.NoError(t, err)

	var result domain.MetricsResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.SourceFallback, result.Source)
	assert.Equal(t, "unconfigured", result.Reason)
}

func TestPostsCommand(t *testing.T) {
	srv := newRowsServer(t)

	out, err := execute(t, rowsConfig(srv.URL), "posts", "--limit=1")
	require.NoError(t, err)

	var result domain.PostsResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.SourceLive, result.Source)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "p1", result.Data[0].ID)
	assert.Equal(t, domain.MediaVideo, result.Data[0].MediaType)
}

func TestPostsCommand_NegativeLimit(t *testing.T) {
	_, err := execute(t, &config.Config{}, "posts", "--limit=-2")
	assert.Error(t, err)
}

func TestDiscoverCommand(t *testing.T) {
	srv := newRowsServer(t)

	out, err := execute(t, rowsConfig(srv.URL), "discover")
	require.NoError(t, err)

	var result discovery
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "x1", result.Spreadsheet.ID)
	assert.Len(t, result.Tables, 2)
	require.NotNil(t, result.MetricsTable)
	assert.Equal(t, "t1", result.MetricsTable.ID)
	require.NotNil(t, result.PostsTable)
	assert.Equal(t, "t2", result.PostsTable.ID)
	assert.Equal(t, int64(0), result.DefaultPicks)
}

func TestDiscoverCommand_Unconfigured(t *testing.T) {
	_, err := execute(t, &config.Config{}, "discover")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestStatusCommand(t *testing.T) {
	srv := newRowsServer(t)

	out, err := execute(t, rowsConfig(srv.URL), "status")
	require.NoError(t, err)

	var status domain.SourceStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	require.NotNil(t, status.Spreadsheet)
	assert.Equal(t, "x1", status.Spreadsheet.ID)
}
