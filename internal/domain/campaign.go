package domain

// CampaignSummary é a representação transitória de uma campanha devolvida
// nas listagens. Os nomes dos campos JSON seguem o contrato histórico da API.
type CampaignSummary struct {
	ID     int64   `json:"Campaign ID"`
	Name   string  `json:"Campaign Name"`
	Budget float64 `json:"Budget"`
}

// AccountCampaigns agrupa as campanhas de uma conta filha (não gerenciadora).
type AccountCampaigns struct {
	AccountName string            `json:"Account Name"`
	Campaigns   []CampaignSummary `json:"Campaigns"`
}

// CampaignListing mapeia o ID de cada conta filha para suas campanhas.
type CampaignListing map[string]AccountCampaigns
