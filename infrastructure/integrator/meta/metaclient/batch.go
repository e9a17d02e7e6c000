package metaclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
)

type batchPayload struct {
	AccessToken string `json:"access_token"`
	Batch       string `json:"batch"`
}

// BatchRequest envia os sub-requests num único POST ao Graph.
// A resposta mantém a posição de cada sub-request; itens nulos viram nil.
func (c *MetaClient) BatchRequest(ctx context.Context, requests []metadomain.BatchRequest) ([]*metadomain.BatchResponse, error) {
	if len(requests) == 0 {
		return []*metadomain.BatchResponse{}, nil
	}

	batch, err := json.Marshal(requests)
	if err != nil {
		return nil, fmt.Errorf("meta: erro ao montar batch: %w", err)
	}

	payload, err := json.Marshal(batchPayload{
		AccessToken: c.Cfg.Meta.AccessToken,
		Batch:       string(batch),
	})
	if err != nil {
		return nil, fmt.Errorf("meta: erro ao montar batch: %w", err)
	}

	body, err := c.do(ctx, operationBatch, http.MethodPost, c.Cfg.Meta.URL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).WithField("batch_size", len(requests)).Error("Erro ao executar batch na API do Meta")
		return nil, err
	}

	var responses []*metadomain.BatchResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, fmt.Errorf("meta: erro ao decodificar resposta do batch: %w", err)
	}

	return responses, nil
}
