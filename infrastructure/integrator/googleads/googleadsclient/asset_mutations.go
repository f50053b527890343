package googleadsclient

import (
	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
)

type assetMutateRequest struct {
	Operations []gadsdomain.AssetOperation `json:"operations"`
}

func (c *GoogleAdsClient) MutateAssets(customerID string, operations []gadsdomain.AssetOperation) (*gadsdomain.MutateResponse, error) {
	var response gadsdomain.MutateResponse
	request := assetMutateRequest{Operations: operations}

	if err := c.post(customerID, "assets:mutate", request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
