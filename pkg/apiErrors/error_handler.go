package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos internos de erro; o cliente recebe apenas o campo `detail`,
// o código serve para mapear o status HTTP.
const (
	// Erros de validação (entrada malformada, nunca chega à API remota)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do fluxo OAuth
	ErrInvalidState  = "AUTH_001" // Token de estado desconhecido ou expirado
	ErrStateNotFound = "AUTH_002" // Token de estado nunca emitido (polling)
	ErrAuthExchange  = "AUTH_003" // Falha na troca do código de autorização

	// Erros da API do Google Ads
	ErrAdsAPIRejected   = "ADS_001" // A plataforma rejeitou a operação
	ErrResourceNotFound = "ADS_002" // Campanha ou recurso remoto não encontrado

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Falha de transporte com serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidState:        http.StatusBadRequest,
	ErrStateNotFound:       http.StatusNotFound,
	ErrAuthExchange:        http.StatusBadRequest,
	ErrAdsAPIRejected:      http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusInternalServerError,
}

// APIError é o envelope de erro devolvido ao cliente
type APIError struct {
	Detail string `json:"detail"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, detail string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{Detail: detail})
}
