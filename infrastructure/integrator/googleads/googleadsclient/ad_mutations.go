package googleadsclient

import (
	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
)

type adGroupMutateRequest struct {
	Operations []gadsdomain.AdGroupOperation `json:"operations"`
}

type adGroupAdMutateRequest struct {
	Operations []gadsdomain.AdGroupAdOperation `json:"operations"`
}

type adGroupCriterionMutateRequest struct {
	Operations []gadsdomain.AdGroupCriterionOperation `json:"operations"`
}

func (c *GoogleAdsClient) MutateAdGroups(customerID string, operations []gadsdomain.AdGroupOperation) (*gadsdomain.MutateResponse, error) {
	var response gadsdomain.MutateResponse
	request := adGroupMutateRequest{Operations: operations}

	if err := c.post(customerID, "adGroups:mutate", request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *GoogleAdsClient) MutateAdGroupAds(customerID string, operations []gadsdomain.AdGroupAdOperation) (*gadsdomain.MutateResponse, error) {
	var response gadsdomain.MutateResponse
	request := adGroupAdMutateRequest{Operations: operations}

	if err := c.post(customerID, "adGroupAds:mutate", request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *GoogleAdsClient) MutateAdGroupCriteria(customerID string, operations []gadsdomain.AdGroupCriterionOperation) (*gadsdomain.MutateResponse, error) {
	var response gadsdomain.MutateResponse
	request := adGroupCriterionMutateRequest{Operations: operations}

	if err := c.post(customerID, "adGroupCriteria:mutate", request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
