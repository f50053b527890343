package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/repository"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/api/handler/router"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/config"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising/mocks"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/authorizing"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func fixedFactory(manager advertising.AdsManager, err error) advertising.ManagerFactory {
	return func(customerID string, creds domain.Credentials) (advertising.AdsManager, error) {
		if err != nil {
			return nil, err
		}
		return manager, nil
	}
}

func postJSON(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestGetCampaigns(t *testing.T) {
	t.Run("Listagem é devolvida com os nomes de chave do contrato", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().ListCampaigns().Return(domain.CampaignListing{
			"1111111111": {
				AccountName: "Loja Central",
				Campaigns: []domain.CampaignSummary{
					{ID: 42, Name: "Spring Sale", Budget: 7.25},
				},
			},
		}, nil)

		rec := postJSON(t, GetCampaigns(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id": "123-456-7890",
			"credentials": map[string]string{"refresh_token": "t"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `"Account Name":"Loja Central"`)
		assert.Contains(t, body, `"Campaign ID":42`)
		assert.Contains(t, body, `"Campaign Name":"Spring Sale"`)
		assert.Contains(t, body, `"Budget":7.25`)
	})

	t.Run("Erro de validação vira 400 com envelope detail", func(t *testing.T) {
		factory := fixedFactory(nil, advertising.NewValidationError("Missing required field: refresh_token"))

		rec := postJSON(t, GetCampaigns(factory), map[string]any{"customer_id": "1234567890"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "Missing required field: refresh_token", envelope["detail"])
	})

	t.Run("Erro da plataforma vira 400 com os sub-erros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().ListCampaigns().Return(nil, &gadsdomain.APIError{
			StatusCode: 400,
			Status:     gadsdomain.ErrorStatus{Message: "Request contains an invalid argument."},
		})

		rec := postJSON(t, GetCampaigns(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id": "1234567890",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Google Ads API error occurred")
	})

	t.Run("Erro inesperado vira 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().ListCampaigns().Return(nil, errors.New("connection reset"))

		rec := postJSON(t, GetCampaigns(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id": "1234567890",
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateCampaignHandler(t *testing.T) {
	t.Run("Campos obrigatórios são validados antes do serviço", func(t *testing.T) {
		tests := []struct {
			name string
			body map[string]any
		}{
			{"Sem campaign_name", map[string]any{"customer_id": "1234567890", "daily_budget": 10.0, "start_date": "2024-03-01", "end_date": "2024-03-31"}},
			{"Orçamento zerado", map[string]any{"customer_id": "1234567890", "campaign_name": "C", "daily_budget": 0.0, "start_date": "2024-03-01", "end_date": "2024-03-31"}},
			{"Sem datas", map[string]any{"customer_id": "1234567890", "campaign_name": "C", "daily_budget": 10.0}},
			{"Data malformada", map[string]any{"customer_id": "1234567890", "campaign_name": "C", "daily_budget": 10.0, "start_date": "01/03/2024", "end_date": "2024-03-31"}},
			{"Período invertido", map[string]any{"customer_id": "1234567890", "campaign_name": "C", "daily_budget": 10.0, "start_date": "2024-03-31", "end_date": "2024-03-01"}},
		}

		factory := fixedFactory(nil, errors.New("factory não deveria ser acionada"))

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := postJSON(t, CreateCampaign(factory), tt.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("Criação bem-sucedida devolve o identificador da campanha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().
			CreateCampaign("Spring Sale", 12.50, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)).
			Return("customers/1234567890/campaigns/42", nil)

		rec := postJSON(t, CreateCampaign(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id":   "1234567890",
			"campaign_name": "Spring Sale",
			"daily_budget":  12.50,
			"start_date":    "2024-03-01",
			"end_date":      "2024-03-31",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "Campaign created successfully", response["message"])
		assert.Equal(t, "customers/1234567890/campaigns/42", response["campaign_id"])
	})
}

func TestUpdateCampaignHandler(t *testing.T) {
	t.Run("Campanha inexistente devolve success false com 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().UpdateCampaignBudget("Missing", 30.0).Return(false, nil)

		rec := postJSON(t, UpdateCampaign(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id":   "1234567890",
			"campaign_name": "Missing",
			"new_budget":    30.0,
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
		assert.Equal(t, "No campaign found with the specified name", response["message"])
	})

	t.Run("Atualização bem-sucedida devolve success true", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().UpdateCampaignBudget("Spring Sale", 30.0).Return(true, nil)

		rec := postJSON(t, UpdateCampaign(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id":   "1234567890",
			"campaign_name": "Spring Sale",
			"new_budget":    30.0,
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])
	})
}

func TestCreateAdHandler(t *testing.T) {
	t.Run("Campanha inexistente vira 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().
			CreateSearchAd("Missing", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", advertising.NewNotFoundError("Campaign 'Missing' not found"))

		rec := postJSON(t, CreateAd(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id":   "1234567890",
			"campaign_name": "Missing",
			"headlines":     []string{"h1"},
			"descriptions":  []string{"d1"},
			"keywords":      []string{"k1"},
			"final_url":     "https://example.com",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Campaign 'Missing' not found")
	})

	t.Run("Criação bem-sucedida devolve o grupo de anúncios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().
			CreateSearchAd("Spring Sale", []string{"h1"}, []string{"d1"}, []string{"k1"}, "https://example.com").
			Return("customers/1234567890/adGroups/7", nil)

		rec := postJSON(t, CreateAd(fixedFactory(mockManager, nil)), map[string]any{
			"customer_id":   "1234567890",
			"campaign_name": "Spring Sale",
			"headlines":     []string{"h1"},
			"descriptions":  []string{"d1"},
			"keywords":      []string{"k1"},
			"final_url":     "https://example.com",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "customers/1234567890/adGroups/7", response["ad_group_id"])
	})
}

func TestUploadLogoHandler(t *testing.T) {
	buildMultipart := func(t *testing.T, payload string, fileContent []byte) (*bytes.Buffer, string) {
		t.Helper()

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		require.NoError(t, writer.WriteField("payload", payload))

		if fileContent != nil {
			part, err := writer.CreateFormFile("file", "logo.png")
			require.NoError(t, err)
			_, err = part.Write(fileContent)
			require.NoError(t, err)
		}

		require.NoError(t, writer.Close())
		return &buf, writer.FormDataContentType()
	}

	t.Run("Upload bem-sucedido devolve o asset criado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		image := []byte{0x89, 0x50, 0x4e, 0x47}

		mockManager := mocks.NewMockAdsManager(ctrl)
		mockManager.EXPECT().
			UploadLogo("Spring Sale", image).
			Return("customers/1234567890/assets/56", nil)

		body, contentType := buildMultipart(t, `{"customer_id":"1234567890","campaign_name":"Spring Sale","credentials":{}}`, image)

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		UploadLogo(fixedFactory(mockManager, nil)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "customers/1234567890/assets/56")
	})

	t.Run("Parte file ausente vira 400", func(t *testing.T) {
		factory := fixedFactory(nil, errors.New("factory não deveria ser acionada"))

		body, contentType := buildMultipart(t, `{"customer_id":"1234567890","campaign_name":"Spring Sale"}`, nil)

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		UploadLogo(factory).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthorizationRoutes(t *testing.T) {
	cfg := &config.Config{
		OAuth: config.OAuth{
			AuthURL:     "https://accounts.google.com/o/oauth2/auth",
			TokenURL:    "https://oauth2.googleapis.com/token",
			RedirectURI: "http://127.0.0.1:8000/oauth2callback",
			Scopes:      []string{"https://www.googleapis.com/auth/adwords"},
			SessionTTL:  30 * time.Minute,
		},
	}

	factory := func(customerID string, creds domain.Credentials) (advertising.AdsManager, error) {
		return nil, errors.New("não usado neste teste")
	}

	service := authorizing.NewService(cfg, repository.NewInMemoryAuthSessionRepository(), factory)
	rt := router.New(router.WithRoutes(Authorization(service)...))

	t.Run("Polling de state desconhecido devolve 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/check_auth_status/unknown-state", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "detail")
	})

	t.Run("Authenticate inicia o fluxo e o polling passa a responder pending", func(t *testing.T) {
		payload := `{"customer_id":"123-456-7890","credentials":{"client_id":"id","client_secret":"secret"}}`

		req := httptest.NewRequest(http.MethodPost, "/authenticate", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.NotEmpty(t, response["state"])
		assert.Contains(t, response["auth_url"], "access_type=offline")

		req = httptest.NewRequest(http.MethodGet, "/check_auth_status/"+response["state"], nil)
		rec = httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("Credenciais com refresh token voltam como objeto direto", func(t *testing.T) {
		payload := `{"customer_id":"1234567890","credentials":{"refresh_token":"stored-token","client_id":"id","client_secret":"secret","token_uri":"https://oauth2.googleapis.com/token","developer_token":"dev"}}`

		req := httptest.NewRequest(http.MethodPost, "/authenticate", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "stored-token", response["refresh_token"])
		assert.Equal(t, "id", response["client_id"])
		assert.NotContains(t, response, "credentials")
	})

	t.Run("Callback conclui o fluxo e o polling responde complete", func(t *testing.T) {
		tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"access","token_type":"Bearer","refresh_token":"fresh-refresh-token","expires_in":3600}`))
		}))
		defer tokenServer.Close()

		payload := `{"customer_id":"1234567890","credentials":{"client_id":"id","client_secret":"secret","token_uri":"` + tokenServer.URL + `"}}`

		req := httptest.NewRequest(http.MethodPost, "/authenticate", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.NotEmpty(t, response["state"])

		req = httptest.NewRequest(http.MethodGet, "/oauth2callback?state="+response["state"]+"&code=auth-code", nil)
		rec = httptest.NewRecorder()
		rt.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/check_auth_status/"+response["state"], nil)
		rec = httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"complete"`)
		assert.Contains(t, rec.Body.String(), `"refresh_token":"fresh-refresh-token"`)
	})

	t.Run("Callback sem code devolve 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/oauth2callback?state=abc", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
