package handler

import (
	"errors"
	"net/http"

	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/authorizing"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/apiErrors"
)

// writeServiceError traduz os erros dos casos de uso para o envelope HTTP.
// A mensagem devolvida é sempre a do erro: o frontend exibe o campo detail
// diretamente ao usuário.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *advertising.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Message)
		return
	}

	var notFoundErr *advertising.NotFoundError
	if errors.As(err, &notFoundErr) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, notFoundErr.Message)
		return
	}

	var adsErr *gadsdomain.APIError
	if errors.As(err, &adsErr) {
		apiErrors.WriteError(w, apiErrors.ErrAdsAPIRejected, adsErr.Error())
		return
	}

	switch {
	case errors.Is(err, authorizing.ErrInvalidState):
		apiErrors.WriteError(w, apiErrors.ErrInvalidState, "Invalid state or authorization code")

	case errors.Is(err, authorizing.ErrStateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStateNotFound, "Invalid state parameter")

	case errors.Is(err, authorizing.ErrStateAlreadyUsed):
		apiErrors.WriteError(w, apiErrors.ErrInvalidState, "Authorization already completed for this state")

	case errors.Is(err, authorizing.ErrMissingClientConfig):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing client_id or client_secret in credentials")

	case errors.Is(err, authorizing.ErrNoRefreshToken):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing refresh token")

	case errors.Is(err, authorizing.ErrExchangeFailed):
		apiErrors.WriteError(w, apiErrors.ErrAuthExchange, err.Error())

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error())
	}
}
