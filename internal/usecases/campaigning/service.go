package campaigning

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"github.com/vfg2006/comunica-ads-api/internal/domain"
	"github.com/vfg2006/comunica-ads-api/pkg/apiErrors"
	"github.com/vfg2006/comunica-ads-api/pkg/utils"
)

type CampaignFetcher interface {
	FetchCampaigns(ctx context.Context, dateRange domain.DateRange) ([]domain.Campaign, error)
}

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type CampaignService interface {
	CheckCredentials() error
	ListCampaigns(ctx context.Context, dateRange domain.DateRange) ([]domain.Campaign, error)
}

type Service struct {
	cfg     *config.Config
	fetcher CampaignFetcher
}

func NewService(cfg *config.Config, fetcher CampaignFetcher) CampaignService {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// CheckCredentials falha quando o token do Graph não foi configurado. Os
// handlers chamam antes de ler as datas: configuração ausente tem precedência.
func (s *Service) CheckCredentials() error {
	if !s.cfg.Meta.HasAccessToken() {
		return NewCampaignError(ErrAccessTokenMissing, apiErrors.ErrMissingConfiguration, MessageAccessTokenMissing)
	}
	return nil
}

// ListCampaigns valida a configuração e o período antes de qualquer chamada ao Graph
func (s *Service) ListCampaigns(ctx context.Context, dateRange domain.DateRange) ([]domain.Campaign, error) {
	if err := s.CheckCredentials(); err != nil {
		return nil, err
	}

	if err := dateRange.Validate(); err != nil {
		campaignErr := NewCampaignError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, MessageInvalidDateRange)
		campaignErr.Cause = err
		return nil, campaignErr
	}

	campaigns, err := s.fetcher.FetchCampaigns(ctx, dateRange)
	if err != nil {
		campaignErr := &CampaignError{
			Err:     ErrMetaIntegration,
			Code:    apiErrors.ErrExternalService,
			Message: MessageMetaIntegration,
			Details: upstreamDetails(err),
			Cause:   err,
		}

		logrus.WithError(err).Errorf("Erro ao buscar dados da API do Facebook:\n%s", utils.PrettyJson(campaignErr.Details))
		return nil, campaignErr
	}

	return campaigns, nil
}

// ParseDateRange lê since/until (AAAA-MM-DD). O intervalo só é explícito com as duas datas.
func ParseDateRange(since, until string) (domain.DateRange, error) {
	sinceDate, err := utils.ParseDate(since)
	if err != nil {
		return domain.DateRange{}, &CampaignError{Err: ErrInvalidDate, Code: apiErrors.ErrInvalidFormat, Message: MessageInvalidDate, Cause: err}
	}

	untilDate, err := utils.ParseDate(until)
	if err != nil {
		return domain.DateRange{}, &CampaignError{Err: ErrInvalidDate, Code: apiErrors.ErrInvalidFormat, Message: MessageInvalidDate, Cause: err}
	}

	if sinceDate == nil || untilDate == nil {
		return domain.DateRange{}, nil
	}

	dateRange := domain.NewDateRange(sinceDate, untilDate)
	if err := dateRange.Validate(); err != nil {
		return domain.DateRange{}, &CampaignError{Err: ErrInvalidDateRange, Code: apiErrors.ErrInvalidRequest, Message: MessageInvalidDateRange, Cause: err}
	}

	return dateRange, nil
}

// upstreamDetails devolve o objeto "error" do Graph quando existe, senão {"message": ...}
func upstreamDetails(err error) any {
	var reqErr *metadomain.RequestError
	if errors.As(err, &reqErr) && reqErr.Details != nil {
		return reqErr.Details
	}

	return map[string]string{"message": err.Error()}
}
