package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
)

// GetAdAccounts lista as contas de anúncio visíveis para o token.
// Apenas a primeira página é lida.
func (c *MetaClient) GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.AccountLimit))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/me/adaccounts?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.do(ctx, operationAccounts, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas de anúncio")
		return nil, err
	}

	var response metadomain.ResponseAdAccount
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, fmt.Errorf("meta: erro ao decodificar contas de anúncio: %w", err)
	}

	if response.Paging.Next != "" {
		logrus.WithField("limit", c.Cfg.Meta.AccountLimit).Warn("Existem mais contas de anúncio além do limite configurado")
	}

	if response.Data == nil {
		return []metadomain.AdAccount{}, nil
	}

	return response.Data, nil
}
