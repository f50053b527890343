package googleadsclient

import (
	"github.com/sirupsen/logrus"

	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
)

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// Search executa uma consulta GAQL contra um customer, acumulando todas as
// páginas da resposta.
func (c *GoogleAdsClient) Search(customerID, query string) ([]gadsdomain.SearchRow, error) {
	var rows []gadsdomain.SearchRow
	pageToken := ""

	for {
		request := searchRequest{Query: query, PageToken: pageToken}

		var response gadsdomain.SearchResponse
		if err := c.post(customerID, "googleAds:search", request, &response); err != nil {
			return nil, err
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"rows":        len(rows),
	}).Debug("Consulta GAQL executada")

	return rows, nil
}
