package authorizing

import "errors"

var (
	// ErrInvalidState indica state ou code ausentes no callback
	ErrInvalidState = errors.New("invalid state or authorization code")
	// ErrStateNotFound indica que o token de estado nunca foi emitido ou expirou
	ErrStateNotFound = errors.New("state token not found")
	// ErrStateAlreadyUsed indica que o callback já consumiu esta sessão
	ErrStateAlreadyUsed = errors.New("state token already used")
	// ErrNoRefreshToken indica que a autorização ainda não foi concluída
	ErrNoRefreshToken = errors.New("authorization not completed yet")
	// ErrMissingClientConfig indica credenciais sem client_id ou client_secret
	ErrMissingClientConfig = errors.New("missing client_id or client_secret")
	// ErrExchangeFailed indica falha na troca do código de autorização
	ErrExchangeFailed = errors.New("authorization code exchange failed")
)
