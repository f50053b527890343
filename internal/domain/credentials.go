package domain

import "strings"

// Credentials é o conjunto de credenciais OAuth de um cliente web do Google
// mais o developer token da API do Google Ads. O frontend envia o objeto
// completo em cada requisição; nada é persistido.
type Credentials struct {
	RefreshToken   string   `json:"refresh_token"`
	TokenURI       string   `json:"token_uri"`
	ClientID       string   `json:"client_id"`
	ClientSecret   string   `json:"client_secret"`
	Scopes         []string `json:"scopes,omitempty"`
	DeveloperToken string   `json:"developer_token"`
	Account        string   `json:"account,omitempty"`
	Expiry         string   `json:"expiry,omitempty"`
	UniverseDomain string   `json:"universe_domain,omitempty"`
}

// MissingFields devolve os campos obrigatórios ausentes, na ordem em que
// são validados. Qualquer chamada remota exige todos eles presentes.
func (c Credentials) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"refresh_token", c.RefreshToken},
		{"token_uri", c.TokenURI},
		{"client_id", c.ClientID},
		{"client_secret", c.ClientSecret},
		{"developer_token", c.DeveloperToken},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}

// NormalizeCustomerID remove separadores do customer ID e verifica que o
// resultado tem exatamente 10 dígitos.
func NormalizeCustomerID(customerID string) (string, bool) {
	normalized := strings.ReplaceAll(customerID, "-", "")

	if len(normalized) != 10 {
		return normalized, false
	}

	for _, r := range normalized {
		if r < '0' || r > '9' {
			return normalized, false
		}
	}

	return normalized, true
}
