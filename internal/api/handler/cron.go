package handler

import (
	"net/http"

	"github.com/orbicity/hotel-ops-api/pkg/apiErrors"
	"github.com/orbicity/hotel-ops-api/pkg/log"
)

//go:generate mockgen -source=cron.go -destination=mocks/mock_probe_runner.go -package=mocks

// ProbeRunner é o agendador que verifica periodicamente a origem do Instagram
type ProbeRunner interface {
	TriggerManualSync()
	IsRunning() bool
	GetStatus() map[string]any
}

// RunSourceProbe dispara uma verificação manual da origem
func RunSourceProbe(probe ProbeRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if probe == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Verificação da origem não disponível", nil)
			return
		}

		if probe.IsRunning() {
			logger.Info("cron: source probe already running")
			apiErrors.WriteError(w, apiErrors.ErrBusy, "Já existe uma verificação da origem em andamento", nil)
			return
		}

		probe.TriggerManualSync()
		logger.Info("cron: source probe triggered manually")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Verificação da origem iniciada com sucesso",
			"type":    "probe",
		})
	}
}

// GetCronStatus retorna o status do agendador
func GetCronStatus(probe ProbeRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if probe == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Verificação da origem não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"probe": probe.GetStatus(),
		})
	}
}
