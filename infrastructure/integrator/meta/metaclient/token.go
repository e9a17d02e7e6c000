package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
)

var ErrEmptyToken = errors.New("token não pode ser vazio")

// CheckToken verifica se o token é válido fazendo uma consulta simples à API.
// Respostas de erro do Graph contam como token inválido; falhas de rede voltam como erro.
func (c *MetaClient) CheckToken(ctx context.Context) (bool, error) {
	if !c.Cfg.Meta.HasAccessToken() {
		return false, ErrEmptyToken
	}

	// Verificamos a validade do token consultando o /me endpoint
	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/me?%s", c.Cfg.Meta.URL, params.Encode())

	_, err := c.do(ctx, operationTokenCheck, http.MethodGet, requestURL, nil)
	if err != nil {
		var reqErr *metadomain.RequestError
		if errors.As(err, &reqErr) {
			logrus.WithField("status_code", reqErr.StatusCode).Warn("Token inválido ou expirado")
			return false, nil
		}

		return false, fmt.Errorf("erro ao verificar token: %w", err)
	}

	return true, nil
}
