package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCustomerID(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		expected   string
		valid      bool
	}{
		{
			name:       "ID com hífens é normalizado",
			customerID: "123-456-7890",
			expected:   "1234567890",
			valid:      true,
		},
		{
			name:       "ID já normalizado passa direto",
			customerID: "1234567890",
			expected:   "1234567890",
			valid:      true,
		},
		{
			name:       "ID curto é rejeitado",
			customerID: "123456789",
			valid:      false,
		},
		{
			name:       "ID longo é rejeitado",
			customerID: "12345678901",
			valid:      false,
		},
		{
			name:       "ID com letras é rejeitado",
			customerID: "12345abcde",
			valid:      false,
		},
		{
			name:       "ID vazio é rejeitado",
			customerID: "",
			valid:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, ok := NormalizeCustomerID(tt.customerID)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.expected, normalized)
			}
		})
	}
}

func TestCredentialsMissingFields(t *testing.T) {
	fullCredentials := Credentials{
		RefreshToken:   "refresh-token",
		TokenURI:       "https://oauth2.googleapis.com/token",
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		DeveloperToken: "developer-token",
	}

	t.Run("Credenciais completas não têm campos ausentes", func(t *testing.T) {
		assert.Empty(t, fullCredentials.MissingFields())
	})

	t.Run("Cada campo obrigatório ausente é reportado", func(t *testing.T) {
		tests := []struct {
			field string
			strip func(c *Credentials)
		}{
			{"refresh_token", func(c *Credentials) { c.RefreshToken = "" }},
			{"token_uri", func(c *Credentials) { c.TokenURI = "" }},
			{"client_id", func(c *Credentials) { c.ClientID = "" }},
			{"client_secret", func(c *Credentials) { c.ClientSecret = "" }},
			{"developer_token", func(c *Credentials) { c.DeveloperToken = "" }},
		}

		for _, tt := range tests {
			creds := fullCredentials
			tt.strip(&creds)
			assert.Equal(t, []string{tt.field}, creds.MissingFields())
		}
	})

	t.Run("Campos ausentes vêm na ordem de validação", func(t *testing.T) {
		creds := Credentials{TokenURI: "https://oauth2.googleapis.com/token", ClientSecret: "s"}
		assert.Equal(t, []string{"refresh_token", "client_id", "developer_token"}, creds.MissingFields())
	})
}

func TestAuthSessionLifecycle(t *testing.T) {
	session := AuthSession{State: "abc"}

	assert.False(t, session.Completed())

	session.RefreshToken = "token"
	assert.True(t, session.Completed())
}
