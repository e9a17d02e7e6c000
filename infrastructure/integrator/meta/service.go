package meta

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/internal/metrics"
	"github.com/vfg2006/comunica-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const insightFields = "spend,impressions,reach,cpm,purchase_roas,actions,cost_per_action_type"

type MetaIntegrator struct {
	cfg     *config.Config
	Client  metaclient.Client
	metrics *metrics.Metrics
}

func New(cfg *config.Config, client metaclient.Client, m *metrics.Metrics) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:     cfg,
		Client:  client,
		metrics: m,
	}
}

// FetchCampaigns busca as campanhas de todas as contas visíveis no período.
// Itens do batch que falharam são descartados; falhas das chamadas em si voltam como erro.
func (s *MetaIntegrator) FetchCampaigns(ctx context.Context, dateRange domain.DateRange) ([]domain.Campaign, error) {
	fetchID, err := utils.GenerateID()
	if err != nil {
		fetchID = "-"
	}

	logger := logrus.WithFields(logrus.Fields{
		"fetch_id": fetchID,
		"since":    dateRange.SinceString(),
		"until":    dateRange.UntilString(),
	})

	accounts, err := s.Client.GetAdAccounts(ctx)
	if err != nil {
		logger.WithError(err).Error("campaigns: failed to get ad accounts")
		return nil, err
	}

	if len(accounts) == 0 {
		logger.Info("campaigns: nenhuma conta de anúncio encontrada")
		return []domain.Campaign{}, nil
	}

	fields := CampaignFields(dateRange)
	campaigns := make([]domain.Campaign, 0)

	for start := 0; start < len(accounts); start += s.batchSize() {
		end := min(start+s.batchSize(), len(accounts))
		chunk := accounts[start:end]

		requests := make([]metadomain.BatchRequest, len(chunk))
		for i, account := range chunk {
			requests[i] = metadomain.BatchRequest{
				Method:      http.MethodGet,
				RelativeURL: CampaignRelativeURL(account.ID, s.cfg.Meta.CampaignLimit, fields),
			}
		}

		responses, err := s.Client.BatchRequest(ctx, requests)
		if err != nil {
			logger.WithError(err).WithField("batch_start", start).Error("campaigns: failed to execute batch request")
			return nil, err
		}

		campaigns = append(campaigns, s.collect(logger, chunk, responses)...)
	}

	s.metrics.AddCampaignsFetched(len(campaigns))

	logger.WithFields(logrus.Fields{
		"accounts":  len(accounts),
		"campaigns": len(campaigns),
	}).Info("campaigns: busca concluída")

	return campaigns, nil
}

// collect normaliza as respostas do batch. A conta de cada item vem da posição
// original do sub-request, mesmo quando itens anteriores são descartados.
func (s *MetaIntegrator) collect(logger *logrus.Entry, accounts []metadomain.AdAccount, responses []*metadomain.BatchResponse) []domain.Campaign {
	campaigns := make([]domain.Campaign, 0)

	for i, response := range responses {
		if i >= len(accounts) {
			logger.WithField("index", i).Warn("campaigns: resposta do batch sem sub-request correspondente")
			break
		}
		account := accounts[i]

		if response == nil {
			s.drop(logger, account, metrics.DropReasonNull, nil)
			continue
		}

		if response.Code != http.StatusOK {
			s.drop(logger, account, metrics.DropReasonStatus, logrus.Fields{"code": response.Code})
			continue
		}

		var body metadomain.ResponseAdCampaign
		if err := json.Unmarshal([]byte(response.Body), &body); err != nil {
			s.drop(logger, account, metrics.DropReasonMalformed, logrus.Fields{"error": err.Error()})
			continue
		}

		if body.Paging.Next != "" {
			logger.WithField("account_id", account.ID).Warn("campaigns: conta com mais campanhas que o limite configurado")
		}

		for _, raw := range body.Data {
			campaigns = append(campaigns, *FactoryCampaign(raw, account, s.cfg.Meta.ConversationActionType))
		}
	}

	return campaigns
}

func (s *MetaIntegrator) drop(logger *logrus.Entry, account metadomain.AdAccount, reason string, fields logrus.Fields) {
	s.metrics.RecordDroppedBatchItem(reason)

	logger.WithFields(fields).WithFields(logrus.Fields{
		"account_id": account.ID,
		"reason":     reason,
	}).Warn("campaigns: item do batch descartado")
}

func (s *MetaIntegrator) batchSize() int {
	if s.cfg.Meta.BatchSize <= 0 {
		return 50
	}
	return s.cfg.Meta.BatchSize
}

// CampaignFields monta o campo "fields" com a aresta de insights aninhada no período
func CampaignFields(dateRange domain.DateRange) string {
	return fmt.Sprintf("name,status,objective,insights.%s{%s}", insightsRange(dateRange), insightFields)
}

func CampaignRelativeURL(accountID string, limit int, fields string) string {
	return fmt.Sprintf("%s/campaigns?limit=%d&fields=%s", accountID, limit, url.QueryEscape(fields))
}

func insightsRange(dateRange domain.DateRange) string {
	if dateRange.IsMaximum() {
		return "date_preset(maximum)"
	}

	timeRange, _ := json.Marshal(map[string]string{
		"since": dateRange.SinceString(),
		"until": dateRange.UntilString(),
	})

	return fmt.Sprintf("time_range(%s)", timeRange)
}
