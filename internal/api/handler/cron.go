package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/comunica-ads-api/pkg/apiErrors"
)

// TokenCheckJob é o agendador da verificação do token visto pelos handlers
type TokenCheckJob interface {
	TriggerManualCheck() bool
	GetStatus() map[string]any
}

// RunTokenCheck dispara manualmente a verificação do token de acesso
func RunTokenCheck(job TokenCheckJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunTokenCheck")

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação do token não disponível", nil)
			return
		}

		response := map[string]any{
			"message": "Verificação do token iniciada com sucesso",
			"type":    "token-check",
		}

		if !job.TriggerManualCheck() {
			response["message"] = "Verificação do token já em andamento"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(job TokenCheckJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if job != nil {
			status["token-check"] = job.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
