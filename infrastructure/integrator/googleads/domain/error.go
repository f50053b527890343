package gadsdomain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa o envelope de erro da API REST do Google Ads
// (google.rpc.Status com um detalhe GoogleAdsFailure).
type ErrorResponse struct {
	Error ErrorStatus `json:"error"`
}

type ErrorStatus struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Details []FailureDetail `json:"details,omitempty"`
}

type FailureDetail struct {
	Type      string     `json:"@type,omitempty"`
	Errors    []AdsError `json:"errors,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

// AdsError é um sub-erro de campo dentro de um GoogleAdsFailure.
type AdsError struct {
	ErrorCode map[string]string `json:"errorCode,omitempty"`
	Message   string            `json:"message"`
	Location  *ErrorLocation    `json:"location,omitempty"`
}

type ErrorLocation struct {
	FieldPathElements []FieldPathElement `json:"fieldPathElements,omitempty"`
}

type FieldPathElement struct {
	FieldName string `json:"fieldName"`
	Index     *int   `json:"index,omitempty"`
}

// APIError é devolvido quando a plataforma rejeita a operação. Carrega os
// sub-erros por campo para que o chamador receba o diagnóstico completo.
type APIError struct {
	StatusCode int
	Status     ErrorStatus
}

// Error formata a mensagem com cada sub-erro e o caminho do campo ofensor.
func (e *APIError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Google Ads API error occurred: %s", e.Status.Message))

	for _, adsErr := range e.FieldErrors() {
		sb.WriteString(fmt.Sprintf("\n\tError with message '%s'.", adsErr.Message))
		if adsErr.Location != nil {
			for _, element := range adsErr.Location.FieldPathElements {
				sb.WriteString(fmt.Sprintf("\n\t\tOn field: %s", element.FieldName))
			}
		}
	}

	return sb.String()
}

// FieldErrors achata os sub-erros de todos os detalhes da resposta.
func (e *APIError) FieldErrors() []AdsError {
	var adsErrors []AdsError
	for _, detail := range e.Status.Details {
		adsErrors = append(adsErrors, detail.Errors...)
	}
	return adsErrors
}
