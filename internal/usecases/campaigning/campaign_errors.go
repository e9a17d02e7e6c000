package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de configuração
	ErrAccessTokenMissing = errors.New("facebook access token is not configured")

	// Erros de validação
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range")

	// Erros de serviços externos
	ErrMetaIntegration = errors.New("error fetching campaigns from Meta")
)

// Mensagens devolvidas ao cliente
const (
	MessageAccessTokenMissing = "O token de acesso do Facebook não está configurado no arquivo .env"
	MessageInvalidDate        = "Data inválida. Use o formato AAAA-MM-DD"
	MessageInvalidDateRange   = "A data inicial deve ser anterior ou igual à data final"
	MessageMetaIntegration    = "Falha ao buscar dados da API do Facebook."
)

// CampaignError é um erro com contexto adicional para a busca de campanhas
type CampaignError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Message string // Mensagem para o cliente
	Details any    // Payload de erro do fornecedor (quando aplicável)
	Cause   error  // Erro original
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

// Unwrap retorna o erro base e a causa
func (e *CampaignError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, message string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}
