package handler

import (
	"net/http"
	"testing"

	"github.com/orbicity/hotel-ops-api/internal/api/handler/mocks"
	"github.com/orbicity/hotel-ops-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunSourceProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("dispara a verificação", func(t *testing.T) {
		probe := mocks.NewMockProbeRunner(ctrl)
		probe.EXPECT().IsRunning().Return(false)
		probe.EXPECT().TriggerManualSync()

		rec := serve(RunSourceProbe(probe), http.MethodPost, "/v1/cron/probe/run")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), "probe")
	})

	t.Run("verificação em andamento", func(t *testing.T) {
		probe := mocks.NewMockProbeRunner(ctrl)
		probe.EXPECT().IsRunning().Return(true)

		rec := serve(RunSourceProbe(probe), http.MethodPost, "/v1/cron/probe/run")

		assert.Equal(t, http.StatusConflict, rec.Code)

		var body apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apiErrors.ErrBusy, body.Code)
	})

	t.Run("serviço ausente", func(t *testing.T) {
		rec := serve(RunSourceProbe(nil), http.MethodPost, "/v1/cron/probe/run")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := mocks.NewMockProbeRunner(ctrl)
	probe.EXPECT().GetStatus().Return(map[string]any{
		"probe_enabled": true,
		"probe_running": false,
	})

	rec := serve(GetCronStatus(probe), http.MethodGet, "/v1/cron/status")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["probe"]["probe_enabled"])
	assert.Equal(t, false, body["probe"]["probe_running"])
}
