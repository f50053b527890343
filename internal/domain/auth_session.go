package domain

import "time"

// AuthSession representa uma tentativa de autorização OAuth em andamento,
// identificada pelo token de estado opaco devolvido ao frontend. A entrada
// nasce pendente quando a URL de autorização é emitida e é completada uma
// única vez quando o callback entrega o refresh token.
type AuthSession struct {
	State        string      `json:"state"`
	CustomerID   string      `json:"customer_id"`
	Credentials  Credentials `json:"credentials"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// Completed indica se o callback já armazenou um refresh token.
func (s *AuthSession) Completed() bool {
	return s.RefreshToken != ""
}

// Expired indica se a sessão passou do TTL configurado.
func (s *AuthSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
