package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de configuração (1000-1999)
	ErrMissingConfiguration = "CFG_001" // Configuração obrigatória ausente

	// Erros de validação (2000-2999)
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros de recurso (4000-4999)
	ErrNotFound         = "RES_001" // Rota ou recurso inexistente
	ErrMethodNotAllowed = "RES_002" // Método não suportado pela rota

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingConfiguration: http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrNotFound:             http.StatusNotFound,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrExternalService:      http.StatusInternalServerError,
}

// APIError é o corpo de erro quando não há detalhes: {"error": "..."}
type APIError struct {
	Error string `json:"error"`
}

// DetailedAPIError carrega a mensagem e o payload do erro: {"message": "...", "error": {...}}
type DetailedAPIError struct {
	Message string `json:"message"`
	Error   any    `json:"error"`
}

// StatusFor devolve o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))

	if details == nil {
		json.NewEncoder(w).Encode(APIError{Error: message})
		return
	}

	json.NewEncoder(w).Encode(DetailedAPIError{
		Message: message,
		Error:   details,
	})
}
