package metadomain

import (
	"fmt"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorDetails) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// RequestError é devolvido quando o Graph responde com status diferente de 200.
// Details fica nil quando o corpo não trouxe o objeto "error".
type RequestError struct {
	Operation  string
	StatusCode int
	Details    *ErrorDetails
	Body       string
}

func (e *RequestError) Error() string {
	if e.Details != nil && e.Details.Message != "" {
		return fmt.Sprintf("meta: %s: status %d: %s", e.Operation, e.StatusCode, e.Details.Message)
	}

	return fmt.Sprintf("meta: %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}
