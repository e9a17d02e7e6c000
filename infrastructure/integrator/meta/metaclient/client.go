package metaclient

import (
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/comunica-ads-api/internal/config"
	"github.com/vfg2006/comunica-ads-api/internal/metrics"
	"github.com/vfg2006/comunica-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	operationAccounts   = "accounts"
	operationBatch      = "batch"
	operationTokenCheck = "token_check"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error)
	BatchRequest(ctx context.Context, requests []metadomain.BatchRequest) ([]*metadomain.BatchResponse, error)
	CheckToken(ctx context.Context) (bool, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Meta.RequestTimeout},
		Metrics:    m,
	}
}

// do executa a requisição e registra duração e resultado por operação
func (c *MetaClient) do(ctx context.Context, operation, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	respBody, status, err := utils.MakeRequest(c.HTTPClient, req)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		c.Metrics.RecordGraphRequest(operation, metrics.OutcomeError, elapsed)
		return nil, err
	}

	if status != http.StatusOK {
		c.Metrics.RecordGraphRequest(operation, metrics.OutcomeError, elapsed)
		return nil, HandleErrorResponse(operation, status, respBody)
	}

	c.Metrics.RecordGraphRequest(operation, metrics.OutcomeSuccess, elapsed)
	return respBody, nil
}
