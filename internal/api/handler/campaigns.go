package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/campaigning"
	"github.com/vfg2006/comunica-ads-api/pkg/apiErrors"
	"github.com/vfg2006/comunica-ads-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListCampaigns devolve as campanhas de todas as contas no período since/until
func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := service.CheckCredentials(); err != nil {
			logger.WithError(err).Error("campaigns: token de acesso não configurado")

			writeCampaignError(w, err)
			return
		}

		since := r.URL.Query().Get("since")
		until := r.URL.Query().Get("until")

		dateRange, err := campaigning.ParseDateRange(since, until)
		if err != nil {
			logger.WithFields(log.Fields{
				"since": since,
				"until": until,
				"error": err.Error(),
			}).Warn("campaigns: período inválido")

			writeCampaignError(w, err)
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), dateRange)
		if err != nil {
			logger.WithError(err).Error("campaigns: falha ao listar campanhas")

			writeCampaignError(w, err)
			return
		}

		if campaigns == nil {
			campaigns = []domain.Campaign{}
		}

		logger.WithField("campaigns", len(campaigns)).Info("campaigns: campanhas listadas")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithError(err).Error("campaigns: erro ao serializar resposta")
		}
	})
}

// writeCampaignError traduz o erro do caso de uso no corpo padronizado
func writeCampaignError(w http.ResponseWriter, err error) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Message, campaignErr.Details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
