package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/apiErrors"
)

type CreateAdRequest struct {
	CustomerID   string             `json:"customer_id"`
	CampaignName string             `json:"campaign_name"`
	Headlines    []string           `json:"headlines"`
	Descriptions []string           `json:"descriptions"`
	Keywords     []string           `json:"keywords"`
	FinalURL     string             `json:"final_url"`
	Credentials  domain.Credentials `json:"credentials"`
}

// CreateAd cria um grupo de anúncios com um anúncio de pesquisa responsivo e
// critérios de palavra-chave na campanha indicada.
func CreateAd(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CreateAdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		switch {
		case req.CampaignName == "":
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: campaign_name")
			return
		case len(req.Headlines) == 0:
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: headlines")
			return
		case len(req.Descriptions) == 0:
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: descriptions")
			return
		case req.FinalURL == "":
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: final_url")
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		adGroupID, err := manager.CreateSearchAd(req.CampaignName, req.Headlines, req.Descriptions, req.Keywords, req.FinalURL)
		if err != nil {
			logrus.Error("Error creating ad:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{
			"message":     "Ad created successfully",
			"ad_group_id": adGroupID,
		})
	})
}
