package domain

// LogoAsset é a projeção plana de um asset de imagem com "Logo" no nome.
type LogoAsset struct {
	ResourceName string `json:"resource_name"`
	Name         string `json:"name"`
	FileSize     int64  `json:"file_size"`
	Width        int64  `json:"width"`
	Height       int64  `json:"height"`
	URL          string `json:"url"`
}

// PriceAsset é a projeção plana de um asset de preço; o valor monetário é
// convertido de micros para a unidade principal.
type PriceAsset struct {
	ResourceName string  `json:"resource_name"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Header       string  `json:"header"`
	Description  string  `json:"description"`
	PriceAmount  float64 `json:"price_amount"`
	CurrencyCode string  `json:"currency_code"`
	Unit         string  `json:"unit"`
}
