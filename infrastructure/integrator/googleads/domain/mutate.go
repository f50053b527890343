package gadsdomain

// MutateResponse é a resposta comum dos endpoints :mutate.
type MutateResponse struct {
	Results []MutateResult `json:"results"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// CampaignBudgetOperation cria ou atualiza um orçamento de campanha. Em
// atualizações o UpdateMask limita os campos tocados.
type CampaignBudgetOperation struct {
	Create     *CampaignBudgetResource `json:"create,omitempty"`
	Update     *CampaignBudgetResource `json:"update,omitempty"`
	UpdateMask string                  `json:"updateMask,omitempty"`
}

type CampaignBudgetResource struct {
	ResourceName   string `json:"resourceName,omitempty"`
	Name           string `json:"name,omitempty"`
	AmountMicros   int64  `json:"amountMicros,omitempty,string"`
	DeliveryMethod string `json:"deliveryMethod,omitempty"`
}

type CampaignOperation struct {
	Create *CampaignResource `json:"create,omitempty"`
}

type CampaignResource struct {
	Name                   string     `json:"name,omitempty"`
	AdvertisingChannelType string     `json:"advertisingChannelType,omitempty"`
	Status                 string     `json:"status,omitempty"`
	ManualCPC              *ManualCPC `json:"manualCpc,omitempty"`
	CampaignBudget         string     `json:"campaignBudget,omitempty"`
	StartDate              string     `json:"startDate,omitempty"`
	EndDate                string     `json:"endDate,omitempty"`
}

type ManualCPC struct {
	EnhancedCPCEnabled bool `json:"enhancedCpcEnabled"`
}

type AdGroupOperation struct {
	Create *AdGroupResource `json:"create,omitempty"`
}

type AdGroupResource struct {
	Name     string `json:"name,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Type     string `json:"type,omitempty"`
}

type AdGroupAdOperation struct {
	Create *AdGroupAdResource `json:"create,omitempty"`
}

type AdGroupAdResource struct {
	AdGroup string `json:"adGroup,omitempty"`
	Status  string `json:"status,omitempty"`
	Ad      *Ad    `json:"ad,omitempty"`
}

type Ad struct {
	ResponsiveSearchAd *ResponsiveSearchAdInfo `json:"responsiveSearchAd,omitempty"`
	FinalURLs          []string                `json:"finalUrls,omitempty"`
}

type ResponsiveSearchAdInfo struct {
	Headlines    []AdTextAsset `json:"headlines,omitempty"`
	Descriptions []AdTextAsset `json:"descriptions,omitempty"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type AdGroupCriterionOperation struct {
	Create *AdGroupCriterionResource `json:"create,omitempty"`
}

type AdGroupCriterionResource struct {
	AdGroup string       `json:"adGroup,omitempty"`
	Keyword *KeywordInfo `json:"keyword,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type AssetOperation struct {
	Create *AssetResource `json:"create,omitempty"`
}

type AssetResource struct {
	Name       string          `json:"name,omitempty"`
	ImageAsset *ImageAsset     `json:"imageAsset,omitempty"`
	PriceAsset *PriceAssetInfo `json:"priceAsset,omitempty"`
}
