package googleadsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/config"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/utils"
)

// Client cobre as chamadas da API REST do Google Ads usadas pelo serviço.
// Cada instância é construída por requisição, a partir das credenciais
// enviadas no corpo, e descartada ao final.
type Client interface {
	Search(customerID, query string) ([]gadsdomain.SearchRow, error)
	MutateCampaignBudgets(customerID string, operations []gadsdomain.CampaignBudgetOperation) (*gadsdomain.MutateResponse, error)
	MutateCampaigns(customerID string, operations []gadsdomain.CampaignOperation) (*gadsdomain.MutateResponse, error)
	MutateAdGroups(customerID string, operations []gadsdomain.AdGroupOperation) (*gadsdomain.MutateResponse, error)
	MutateAdGroupAds(customerID string, operations []gadsdomain.AdGroupAdOperation) (*gadsdomain.MutateResponse, error)
	MutateAdGroupCriteria(customerID string, operations []gadsdomain.AdGroupCriterionOperation) (*gadsdomain.MutateResponse, error)
	MutateAssets(customerID string, operations []gadsdomain.AssetOperation) (*gadsdomain.MutateResponse, error)
}

type GoogleAdsClient struct {
	Cfg             *config.Config
	Credentials     domain.Credentials
	LoginCustomerID string

	httpClient *http.Client
}

// NewClient monta um cliente autenticado via refresh token; o transporte do
// oauth2 renova o access token automaticamente quando necessário.
func NewClient(cfg *config.Config, creds domain.Credentials, loginCustomerID string) Client {
	tokenURL := creds.TokenURI
	if tokenURL == "" {
		tokenURL = cfg.OAuth.TokenURL
	}

	scopes := creds.Scopes
	if len(scopes) == 0 {
		scopes = cfg.OAuth.Scopes
	}

	oauthConfig := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		Scopes:       scopes,
	}

	httpClient := oauthConfig.Client(context.Background(), &oauth2.Token{
		RefreshToken: creds.RefreshToken,
	})

	return &GoogleAdsClient{
		Cfg:             cfg,
		Credentials:     creds,
		LoginCustomerID: loginCustomerID,
		httpClient:      httpClient,
	}
}

// post envia um corpo JSON para um endpoint de customer e decodifica a
// resposta em out. Erros da plataforma viram *gadsdomain.APIError.
func (c *GoogleAdsClient) post(customerID, action string, payload any, out any) error {
	url := fmt.Sprintf("%s/customers/%s/%s", c.Cfg.GoogleAds.URL, customerID, action)

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("url", url).Debug("Requisição para a API do Google Ads: ", utils.PrettyJson(payload))
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.Credentials.DeveloperToken)
	req.Header.Set("login-customer-id", c.LoginCustomerID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("url", url).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// HandleResponse lê o corpo e converte respostas não-2xx no erro tipado da
// plataforma, preservando os sub-erros por campo.
func (c *GoogleAdsClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errorResponse gadsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err != nil || errorResponse.Error.Message == "" {
		// Resposta de erro fora do formato esperado: falha de transporte
		return nil, fmt.Errorf("google ads API returned status %d: %s", resp.StatusCode, string(body))
	}

	apiErr := &gadsdomain.APIError{
		StatusCode: resp.StatusCode,
		Status:     errorResponse.Error,
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"status":      errorResponse.Error.Status,
		"sub_errors":  len(apiErr.FieldErrors()),
	}).Error("A API do Google Ads rejeitou a operação")

	return nil, apiErr
}
