package googleadsclient

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/config"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
)

// newTestClient aponta o cliente para um servidor de API falso e um endpoint
// de token falso, para que a renovação do access token aconteça localmente.
func newTestClient(t *testing.T, apiServer *httptest.Server) Client {
	t.Helper()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"access_token":"access-token","token_type":"Bearer","expires_in":3600}`))
		require.NoError(t, err)
	}))
	t.Cleanup(tokenServer.Close)

	cfg := &config.Config{
		GoogleAds: config.GoogleAds{URL: apiServer.URL},
	}

	creds := domain.Credentials{
		RefreshToken:   "refresh-token",
		TokenURI:       tokenServer.URL,
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		DeveloperToken: "developer-token",
	}

	return NewClient(cfg, creds, "1234567890")
}

func TestSearchSendsAuthHeadersAndPaginates(t *testing.T) {
	requests := 0

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/customers/1234567890/googleAds:search", r.URL.Path)
		assert.Equal(t, "developer-token", r.Header.Get("developer-token"))
		assert.Equal(t, "1234567890", r.Header.Get("login-customer-id"))
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")

		if requests == 1 {
			_, _ = w.Write([]byte(`{
				"results": [{"campaign": {"id": "1", "name": "First"}}],
				"nextPageToken": "page-2"
			}`))
			return
		}

		_, _ = w.Write([]byte(`{
			"results": [{"campaign": {"id": "2", "name": "Second"}}]
		}`))
	}))
	t.Cleanup(apiServer.Close)

	client := newTestClient(t, apiServer)

	rows, err := client.Search("1234567890", "SELECT campaign.id FROM campaign")
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
	require.Len(t, rows, 2)
	assert.Equal(t, "First", rows[0].Campaign.Name)
	assert.Equal(t, "Second", rows[1].Campaign.Name)
}

func TestSearchDecodesImageAssetDimensions(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// int64 na API REST trafega como string JSON, inclusive nas dimensões
		_, _ = w.Write([]byte(`{
			"results": [{"asset": {
				"resourceName": "customers/1234567890/assets/56",
				"name": "Spring Sale Logo",
				"imageAsset": {
					"mimeType": "IMAGE_PNG",
					"fileSize": "20480",
					"fullSize": {
						"widthPixels": "1200",
						"heightPixels": "628",
						"url": "https://example.com/logo.png"
					}
				}
			}}]
		}`))
	}))
	t.Cleanup(apiServer.Close)

	client := newTestClient(t, apiServer)

	rows, err := client.Search("1234567890", "SELECT asset.name FROM asset")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Asset.ImageAsset)
	require.NotNil(t, rows[0].Asset.ImageAsset.FullSize)
	assert.Equal(t, int64(1200), rows[0].Asset.ImageAsset.FullSize.WidthPixels)
	assert.Equal(t, int64(628), rows[0].Asset.ImageAsset.FullSize.HeightPixels)
	assert.Equal(t, "https://example.com/logo.png", rows[0].Asset.ImageAsset.FullSize.URL)
}

func TestMutateCampaignBudgetsSerializesMicrosAsString(t *testing.T) {
	var receivedBody string

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/1234567890/campaignBudgets:mutate", r.URL.Path)

		buf, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		receivedBody = string(buf)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"resourceName": "customers/1234567890/campaignBudgets/99"}]}`))
	}))
	t.Cleanup(apiServer.Close)

	client := newTestClient(t, apiServer)

	response, err := client.MutateCampaignBudgets("1234567890", []gadsdomain.CampaignBudgetOperation{
		{Create: &gadsdomain.CampaignBudgetResource{Name: "Budget", AmountMicros: 12500000, DeliveryMethod: "STANDARD"}},
	})
	require.NoError(t, err)

	require.Len(t, response.Results, 1)
	assert.Equal(t, "customers/1234567890/campaignBudgets/99", response.Results[0].ResourceName)

	// int64 na API REST trafega como string JSON
	assert.Contains(t, receivedBody, `"amountMicros":"12500000"`)
}

func TestHandleResponseFormatsPlatformErrors(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"error": {
				"code": 400,
				"message": "Request contains an invalid argument.",
				"status": "INVALID_ARGUMENT",
				"details": [{
					"@type": "type.googleapis.com/google.ads.googleads.v17.errors.GoogleAdsFailure",
					"errors": [{
						"errorCode": {"campaignError": "DUPLICATE_CAMPAIGN_NAME"},
						"message": "Duplicate campaign name",
						"location": {"fieldPathElements": [{"fieldName": "operations"}, {"fieldName": "create"}]}
					}]
				}]
			}
		}`))
	}))
	t.Cleanup(apiServer.Close)

	client := newTestClient(t, apiServer)

	_, err := client.Search("1234567890", "SELECT campaign.id FROM campaign")
	require.Error(t, err)

	var apiErr *gadsdomain.APIError
	require.ErrorAs(t, err, &apiErr)

	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Len(t, apiErr.FieldErrors(), 1)

	message := apiErr.Error()
	assert.Contains(t, message, "Google Ads API error occurred: Request contains an invalid argument.")
	assert.Contains(t, message, "Error with message 'Duplicate campaign name'.")
	assert.Contains(t, message, "On field: operations")
	assert.Contains(t, message, "On field: create")
}

func TestHandleResponseWithUnexpectedBody(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	t.Cleanup(apiServer.Close)

	client := newTestClient(t, apiServer)

	_, err := client.Search("1234567890", "SELECT campaign.id FROM campaign")
	require.Error(t, err)

	var apiErr *gadsdomain.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "status 502")
}
