package authorizing

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/repository"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/config"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/utils"
)

// Service conduz o fluxo de autorização OAuth: emite a URL de consentimento,
// troca o código recebido no callback por um refresh token e entrega as
// credenciais completas quando o frontend conclui o fluxo.
type Service interface {
	Start(customerID string, creds domain.Credentials) (*StartResult, error)
	HandleCallback(ctx context.Context, state, code string) error
	Status(state string) (*StatusResult, error)
	CompleteAndListCampaigns(customerID, refreshToken string, creds domain.Credentials) (domain.CampaignListing, error)
}

// StartResult é o desfecho de uma chamada de autenticação. Quando as
// credenciais já trazem refresh token o fluxo termina na hora; caso contrário
// o frontend redireciona o usuário para AuthURL e consulta o estado depois.
type StartResult struct {
	Authorized  bool
	AuthURL     string
	State       string
	Credentials domain.Credentials
}

// StatusResult descreve uma sessão pendente ou concluída.
type StatusResult struct {
	Status       string `json:"status"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type service struct {
	cfg            *config.Config
	sessions       repository.AuthSessionRepository
	managerFactory advertising.ManagerFactory
	now            func() time.Time
}

func NewService(cfg *config.Config, sessions repository.AuthSessionRepository, managerFactory advertising.ManagerFactory) Service {
	return &service{
		cfg:            cfg,
		sessions:       sessions,
		managerFactory: managerFactory,
		now:            time.Now,
	}
}

// oauthConfig monta a configuração OAuth a partir das credenciais da sessão,
// com os endpoints do serviço como reserva.
func (s *service) oauthConfig(creds domain.Credentials) *oauth2.Config {
	tokenURL := creds.TokenURI
	if tokenURL == "" {
		tokenURL = s.cfg.OAuth.TokenURL
	}

	scopes := creds.Scopes
	if len(scopes) == 0 {
		scopes = s.cfg.OAuth.Scopes
	}

	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  s.cfg.OAuth.RedirectURI,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  s.cfg.OAuth.AuthURL,
			TokenURL: tokenURL,
		},
	}
}

// Start inicia o fluxo. Credenciais já portadoras de refresh token encerram
// o fluxo imediatamente, sem sessão; as demais ganham um token de estado com
// TTL e a URL de consentimento correspondente.
func (s *service) Start(customerID string, creds domain.Credentials) (*StartResult, error) {
	normalized, ok := domain.NormalizeCustomerID(customerID)
	if !ok {
		return nil, advertising.NewValidationError("Invalid customer ID format: %s. It must be a 10-digit number.", customerID)
	}

	if creds.RefreshToken != "" {
		logrus.WithField("customer_id", normalized).Info("Credenciais já autorizadas, fluxo OAuth dispensado")
		return &StartResult{
			Authorized:  true,
			Credentials: creds,
		}, nil
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, ErrMissingClientConfig
	}

	state, err := utils.GenerateStateToken()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "generate state token")
	}

	now := s.now()
	session := &domain.AuthSession{
		State:       state,
		CustomerID:  normalized,
		Credentials: creds,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.OAuth.SessionTTL),
	}

	if err := s.sessions.Save(session); err != nil {
		return nil, pkgerrors.Wrap(err, "save auth session")
	}

	authURL := s.oauthConfig(creds).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	logrus.WithFields(logrus.Fields{
		"customer_id": normalized,
		"state":       state,
	}).Info("Fluxo de autorização iniciado")

	return &StartResult{
		AuthURL: authURL,
		State:   state,
	}, nil
}

// HandleCallback troca o código de autorização pelo refresh token e o grava
// na sessão. Cada sessão é consumida uma única vez: um segundo callback com o
// mesmo state é rejeitado.
func (s *service) HandleCallback(ctx context.Context, state, code string) error {
	if state == "" || code == "" {
		return ErrInvalidState
	}

	session, err := s.sessions.Get(state)
	if err != nil {
		return pkgerrors.Wrap(err, "load auth session")
	}
	if session == nil {
		return ErrStateNotFound
	}
	if session.Completed() {
		return ErrStateAlreadyUsed
	}

	token, err := s.oauthConfig(session.Credentials).Exchange(ctx, code)
	if err != nil {
		logrus.WithField("state", state).Errorf("Falha na troca do código de autorização: %v", err)
		return pkgerrors.Wrapf(ErrExchangeFailed, "%v", err)
	}

	if token.RefreshToken == "" {
		logrus.WithField("state", state).Error("Troca concluída sem refresh token na resposta")
		return pkgerrors.Wrap(ErrExchangeFailed, "no refresh token in token response")
	}

	if err := s.sessions.SetRefreshToken(state, token.RefreshToken); err != nil {
		switch err {
		case repository.ErrSessionNotFound:
			return ErrStateNotFound
		case repository.ErrSessionCompleted:
			return ErrStateAlreadyUsed
		}
		return pkgerrors.Wrap(err, "store refresh token")
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": session.CustomerID,
		"state":       state,
	}).Info("Autorização concluída com sucesso")

	return nil
}

// Status informa se a sessão ainda aguarda o callback. Sessões concluídas
// devolvem o refresh token para o frontend guardar.
func (s *service) Status(state string) (*StatusResult, error) {
	session, err := s.sessions.Get(state)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load auth session")
	}
	if session == nil {
		return nil, ErrStateNotFound
	}

	if !session.Completed() {
		return &StatusResult{Status: "pending"}, nil
	}

	return &StatusResult{
		Status:       "complete",
		RefreshToken: session.RefreshToken,
	}, nil
}

// CompleteAndListCampaigns monta as credenciais completas com o refresh token
// obtido no fluxo e lista as campanhas da conta como teste de conectividade,
// poupando o frontend de uma segunda rodada de requisições.
func (s *service) CompleteAndListCampaigns(customerID, refreshToken string, creds domain.Credentials) (domain.CampaignListing, error) {
	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	creds.RefreshToken = refreshToken

	manager, err := s.managerFactory(customerID, creds)
	if err != nil {
		return nil, err
	}

	return manager.ListCampaigns()
}
