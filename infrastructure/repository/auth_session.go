package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/database/postgres"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
)

const authSessionsTable = "auth_sessions"

var (
	// ErrSessionNotFound indica que o token de estado nunca foi emitido ou expirou
	ErrSessionNotFound = errors.New("auth session not found")
	// ErrSessionCompleted indica que o callback já consumiu esta sessão
	ErrSessionCompleted = errors.New("auth session already completed")
)

// AuthSessionRepository guarda as tentativas de autorização OAuth pendentes,
// indexadas pelo token de estado. As entradas expiram pelo TTL configurado e
// são varridas pelo agendador de limpeza.
type AuthSessionRepository interface {
	Save(session *domain.AuthSession) error
	// Get devolve nil quando o estado é desconhecido ou já expirou
	Get(state string) (*domain.AuthSession, error)
	// SetRefreshToken completa a sessão; uma sessão só é completada uma vez
	SetRefreshToken(state, refreshToken string) error
	DeleteExpired(now time.Time) (int, error)
}

type authSessionRepository struct {
	conn *postgres.Connection
}

// NewAuthSessionRepository cria o repositório Postgres, usado quando a
// aplicação roda com mais de uma instância e precisa compartilhar as sessões.
func NewAuthSessionRepository(conn *postgres.Connection) AuthSessionRepository {
	return &authSessionRepository{
		conn: conn,
	}
}

func (r *authSessionRepository) Save(session *domain.AuthSession) error {
	credentialsJSON, err := json.Marshal(session.Credentials)
	if err != nil {
		return err
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(authSessionsTable).
		Columns("state", "customer_id", "credentials", "refresh_token", "created_at", "expires_at").
		Values(session.State, session.CustomerID, credentialsJSON, session.RefreshToken, session.CreatedAt, session.ExpiresAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	return err
}

func (r *authSessionRepository) Get(state string) (*domain.AuthSession, error) {
	selectSQL, selectArgs, err := squirrel.
		Select("state", "customer_id", "credentials", "refresh_token", "created_at", "expires_at").
		From(authSessionsTable).
		Where(squirrel.Eq{"state": state}).
		Where(squirrel.Gt{"expires_at": time.Now()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(selectSQL, selectArgs...)

	session := &domain.AuthSession{}
	var credentialsJSON []byte

	if err := row.Scan(
		&session.State,
		&session.CustomerID,
		&credentialsJSON,
		&session.RefreshToken,
		&session.CreatedAt,
		&session.ExpiresAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(credentialsJSON, &session.Credentials); err != nil {
		return nil, err
	}

	return session, nil
}

func (r *authSessionRepository) SetRefreshToken(state, refreshToken string) error {
	// A cláusula sobre refresh_token garante que a sessão é completada uma
	// única vez mesmo com callbacks concorrentes para o mesmo estado
	updateSQL, updateArgs, err := squirrel.
		Update(authSessionsTable).
		Set("refresh_token", refreshToken).
		Where(squirrel.Eq{"state": state, "refresh_token": ""}).
		Where(squirrel.Gt{"expires_at": time.Now()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		session, err := r.Get(state)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		return ErrSessionCompleted
	}

	return nil
}

func (r *authSessionRepository) DeleteExpired(now time.Time) (int, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(authSessionsTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		logrus.WithField("sessions", affected).Debug("Sessões de autorização expiradas removidas")
	}

	return int(affected), nil
}
