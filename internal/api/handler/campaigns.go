package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/apiErrors"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/utils"
)

type GetCampaignsRequest struct {
	CustomerID  string             `json:"customer_id"`
	Credentials domain.Credentials `json:"credentials"`
}

type CreateCampaignRequest struct {
	CustomerID   string             `json:"customer_id"`
	CampaignName string             `json:"campaign_name"`
	DailyBudget  float64            `json:"daily_budget"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	Credentials  domain.Credentials `json:"credentials"`
}

type UpdateCampaignRequest struct {
	CustomerID   string             `json:"customer_id"`
	CampaignName string             `json:"campaign_name"`
	NewBudget    float64            `json:"new_budget"`
	Credentials  domain.Credentials `json:"credentials"`
}

// GetCampaigns lista as campanhas de todas as contas filhas do anunciante.
func GetCampaigns(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GetCampaignsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		campaigns, err := manager.ListCampaigns()
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, campaigns)
	})
}

// CreateCampaign cria uma campanha de pesquisa pausada com o orçamento dado.
func CreateCampaign(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		if req.CampaignName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: campaign_name")
			return
		}
		if req.DailyBudget <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "daily_budget must be greater than zero")
			return
		}
		if req.StartDate == "" || req.EndDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: start_date or end_date")
			return
		}

		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid start_date: "+err.Error())
			return
		}

		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid end_date: "+err.Error())
			return
		}

		if endDate.Before(*startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must not be before start_date")
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		campaignID, err := manager.CreateCampaign(req.CampaignName, req.DailyBudget, *startDate, *endDate)
		if err != nil {
			logrus.Error("Error creating campaign:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{
			"message":     "Campaign created successfully",
			"campaign_id": campaignID,
		})
	})
}

// UpdateCampaign atualiza o orçamento diário de uma campanha pelo nome.
// Campanha inexistente não é erro: a resposta traz success false.
func UpdateCampaign(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		if req.CampaignName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: campaign_name")
			return
		}
		if req.NewBudget <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "new_budget must be greater than zero")
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		updated, err := manager.UpdateCampaignBudget(req.CampaignName, req.NewBudget)
		if err != nil {
			logrus.Error("Error updating campaign budget:", err)
			writeServiceError(w, err)
			return
		}

		message := "Campaign budget updated successfully"
		if !updated {
			message = "No campaign found with the specified name"
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{
			"message": message,
			"success": updated,
		})
	})
}
