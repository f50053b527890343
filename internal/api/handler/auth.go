package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/authorizing"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/apiErrors"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/log"
)

type AuthenticateRequest struct {
	CustomerID  string             `json:"customer_id"`
	Credentials domain.Credentials `json:"credentials"`
}

type CompleteAuthRequest struct {
	CustomerID   string             `json:"customer_id"`
	RefreshToken string             `json:"refresh_token"`
	Credentials  domain.Credentials `json:"credentials"`
}

// Authenticate inicia o fluxo OAuth ou devolve as credenciais diretamente
// quando elas já trazem refresh token.
func Authenticate(service authorizing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AuthenticateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		result, err := service.Start(req.CustomerID, req.Credentials)
		if err != nil {
			logrus.Error("Error starting authorization flow:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		// Credenciais já autorizadas voltam como objeto direto; o frontend lê
		// response.refresh_token sem envelope.
		if result.Authorized {
			encodeResponse(w, result.Credentials)
			return
		}

		encodeResponse(w, map[string]any{
			"auth_url": result.AuthURL,
			"state":    result.State,
		})
	})
}

// OAuthCallback recebe o redirecionamento do provedor e devolve uma página
// simples para o usuário fechar.
func OAuthCallback(service authorizing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		code := r.URL.Query().Get("code")

		if err := service.HandleCallback(r.Context(), state, code); err != nil {
			log.ForContext(r.Context()).Error("Error handling OAuth callback:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err := w.Write([]byte("<html><body><h1>Authentication successful!</h1><p>You can close this window and return to the application.</p></body></html>"))
		if err != nil {
			logrus.WithError(err).Warn("error responding to OAuth callback")
		}
	})
}

// CheckAuthStatus informa ao frontend se o callback já chegou.
func CheckAuthStatus(service authorizing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := httprouter.ParamsFromContext(r.Context()).ByName("state")

		status, err := service.Status(state)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, status)
	})
}

// CompleteAuthAndGetCampaigns conclui o fluxo com o refresh token recebido e
// lista as campanhas como teste de conectividade.
func CompleteAuthAndGetCampaigns(service authorizing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CompleteAuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		campaigns, err := service.CompleteAndListCampaigns(req.CustomerID, req.RefreshToken, req.Credentials)
		if err != nil {
			logrus.Error("Error completing authorization flow:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{"campaigns": campaigns})
	})
}

func encodeResponse(w http.ResponseWriter, payload any) {
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response")
	}
}
