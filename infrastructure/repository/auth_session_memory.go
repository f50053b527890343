package repository

import (
	"sync"
	"time"

	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
)

// inMemoryAuthSessionRepository é o armazenamento padrão de sessões: um mapa
// protegido por mutex, adequado para uma única instância do processo.
type inMemoryAuthSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.AuthSession
}

func NewInMemoryAuthSessionRepository() AuthSessionRepository {
	return &inMemoryAuthSessionRepository{
		sessions: make(map[string]*domain.AuthSession),
	}
}

func (r *inMemoryAuthSessionRepository) Save(session *domain.AuthSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	r.sessions[session.State] = &copied

	return nil
}

func (r *inMemoryAuthSessionRepository) Get(state string) (*domain.AuthSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[state]
	if !ok || session.Expired(time.Now()) {
		return nil, nil
	}

	copied := *session
	return &copied, nil
}

func (r *inMemoryAuthSessionRepository) SetRefreshToken(state, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[state]
	if !ok || session.Expired(time.Now()) {
		return ErrSessionNotFound
	}

	if session.Completed() {
		return ErrSessionCompleted
	}

	session.RefreshToken = refreshToken
	return nil
}

func (r *inMemoryAuthSessionRepository) DeleteExpired(now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for state, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, state)
			removed++
		}
	}

	return removed, nil
}
