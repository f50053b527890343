package googleadsclient

import (
	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
)

type campaignBudgetMutateRequest struct {
	Operations []gadsdomain.CampaignBudgetOperation `json:"operations"`
}

type campaignMutateRequest struct {
	Operations []gadsdomain.CampaignOperation `json:"operations"`
}

func (c *GoogleAdsClient) MutateCampaignBudgets(customerID string, operations []gadsdomain.CampaignBudgetOperation) (*gadsdomain.MutateResponse, error) {
	var response gadsdomain.MutateResponse
	request := campaignBudgetMutateRequest{Operations: operations}

	if err := c.post(customerID, "campaignBudgets:mutate", request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *GoogleAdsClient) MutateCampaigns(customerID string, operations []gadsdomain.CampaignOperation) (*gadsdomain.MutateResponse, error) {
	var response gadsdomain.MutateResponse
	request := campaignMutateRequest{Operations: operations}

	if err := c.post(customerID, "campaigns:mutate", request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
