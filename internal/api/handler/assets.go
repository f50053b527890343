package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/apiErrors"
)

// Limite do corpo multipart do upload de logo
const maxLogoUploadBytes = 10 << 20

type AssetRequest struct {
	CustomerID   string             `json:"customer_id"`
	CampaignName string             `json:"campaign_name"`
	Credentials  domain.Credentials `json:"credentials"`
}

type UploadPriceRequest struct {
	CustomerID   string             `json:"customer_id"`
	CampaignName string             `json:"campaign_name"`
	Price        float64            `json:"price"`
	Credentials  domain.Credentials `json:"credentials"`
}

// UploadLogo recebe um formulário multipart com a parte `payload` (JSON) e a
// parte `file` (binário da imagem) e cria o asset de imagem.
func UploadLogo(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxLogoUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid multipart form: "+err.Error())
			return
		}

		var req AssetRequest
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid payload part: "+err.Error())
			return
		}

		if req.CampaignName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: campaign_name")
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing file part: "+err.Error())
			return
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error reading file part: "+err.Error())
			return
		}

		if len(image) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Uploaded file is empty")
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		assetID, err := manager.UploadLogo(req.CampaignName, image)
		if err != nil {
			logrus.Error("Error uploading logo asset:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{
			"message":  "Logo uploaded successfully",
			"asset_id": assetID,
		})
	})
}

// UploadPrice cria um asset de preço com o valor informado.
func UploadPrice(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req UploadPriceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		if req.CampaignName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required field: campaign_name")
			return
		}
		if req.Price <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "price must be greater than zero")
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		assetID, err := manager.UploadPrice(req.CampaignName, req.Price)
		if err != nil {
			logrus.Error("Error uploading price asset:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{
			"message":  "Price asset uploaded successfully",
			"asset_id": assetID,
		})
	})
}

// GetLogoAssets lista os assets de imagem da conta com "Logo" no nome.
func GetLogoAssets(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AssetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		assets, err := manager.ListLogoAssets()
		if err != nil {
			logrus.Error("Error listing logo assets:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{
			"message": "Assets retrieved successfully",
			"assets":  assets,
		})
	})
}

// GetPriceAssets lista os assets de preço da conta.
func GetPriceAssets(factory advertising.ManagerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AssetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error())
			return
		}

		manager, err := factory(req.CustomerID, req.Credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		assets, err := manager.ListPriceAssets()
		if err != nil {
			logrus.Error("Error listing price assets:", err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encodeResponse(w, map[string]any{
			"message": "Assets retrieved successfully",
			"assets":  assets,
		})
	})
}
