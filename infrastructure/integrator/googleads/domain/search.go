package gadsdomain

// SearchResponse é a resposta de customers/{id}/googleAds:search.
type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

// SearchRow traz apenas os recursos que as consultas GAQL deste serviço
// selecionam; a API REST devolve int64 como string.
type SearchRow struct {
	Campaign       *Campaign       `json:"campaign,omitempty"`
	CampaignBudget *CampaignBudget `json:"campaignBudget,omitempty"`
	CustomerClient *CustomerClient `json:"customerClient,omitempty"`
	Asset          *Asset          `json:"asset,omitempty"`
}

type Campaign struct {
	ResourceName string `json:"resourceName,omitempty"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Status       string `json:"status,omitempty"`
}

type CampaignBudget struct {
	ResourceName string `json:"resourceName,omitempty"`
	AmountMicros string `json:"amountMicros,omitempty"`
}

type CustomerClient struct {
	ID              string `json:"id,omitempty"`
	DescriptiveName string `json:"descriptiveName,omitempty"`
	Manager         bool   `json:"manager,omitempty"`
}

type Asset struct {
	ResourceName string      `json:"resourceName,omitempty"`
	Name         string      `json:"name,omitempty"`
	ImageAsset   *ImageAsset `json:"imageAsset,omitempty"`
	PriceAsset   *PriceAssetInfo `json:"priceAsset,omitempty"`
}

type ImageAsset struct {
	Data     string           `json:"data,omitempty"` // base64, apenas na criação
	MimeType string           `json:"mimeType,omitempty"`
	FileSize string           `json:"fileSize,omitempty"`
	FullSize *ImageDimensions `json:"fullSize,omitempty"`
}

type ImageDimensions struct {
	WidthPixels  int64  `json:"widthPixels,omitempty,string"`
	HeightPixels int64  `json:"heightPixels,omitempty,string"`
	URL          string `json:"url,omitempty"`
}

type PriceAssetInfo struct {
	Type           string          `json:"type,omitempty"`
	PriceOfferings []PriceOffering `json:"priceOfferings,omitempty"`
}

type PriceOffering struct {
	Header      string `json:"header,omitempty"`
	Description string `json:"description,omitempty"`
	Price       *Money `json:"price,omitempty"`
	Unit        string `json:"unit,omitempty"`
	FinalURL    string `json:"finalUrl,omitempty"`
}

type Money struct {
	AmountMicros int64  `json:"amountMicros,omitempty,string"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}
