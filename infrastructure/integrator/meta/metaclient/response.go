package metaclient

import (
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/comunica-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/comunica-ads-api/pkg/utils"
)

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleErrorResponse transforma uma resposta de erro do Graph em *RequestError,
// preservando o objeto "error" quando ele existe
func HandleErrorResponse(operation string, status int, body []byte) error {
	reqErr := &metadomain.RequestError{
		Operation:  operation,
		StatusCode: status,
		Body:       string(body),
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr == nil && errorResp.Error.Message != "" {
		reqErr.Details = &errorResp.Error
	}

	entry := logrus.WithFields(logrus.Fields{
		"operation":   operation,
		"status_code": status,
	})

	if (reqErr.Details != nil && reqErr.Details.IsTokenExpired()) || containsTokenExpirationMessage(reqErr.Body) {
		entry.Warn("Token de acesso do Facebook expirado ou invalidado")
	}

	entry.Errorf("Erro na resposta da API do Meta:\n%s", utils.PrettyJson(body))

	return reqErr
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
