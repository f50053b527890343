package advertising

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	gadsdomain "github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/integrator/googleads/googleadsclient"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/config"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/domain"
	"github.com/EmmS21/AdAlchemyAIAPICalls/pkg/utils"
)

// AdsManager é uma sessão de operações contra uma única conta de anunciante,
// com credenciais fixadas na construção. Toda operação é uma ou algumas
// chamadas remotas; nenhum estado local sobrevive à requisição.
type AdsManager interface {
	ListCampaigns() (domain.CampaignListing, error)
	CreateCampaign(name string, dailyBudget float64, startDate, endDate time.Time) (string, error)
	UpdateCampaignBudget(name string, newBudget float64) (bool, error)
	CreateSearchAd(campaignName string, headlines, descriptions, keywords []string, finalURL string) (string, error)
	UploadLogo(campaignName string, image []byte) (string, error)
	UploadPrice(campaignName string, price float64) (string, error)
	ListLogoAssets() ([]domain.LogoAsset, error)
	ListPriceAssets() ([]domain.PriceAsset, error)
}

// ManagerFactory constrói uma sessão por requisição. A validação acontece
// aqui; nenhuma chamada remota é feita antes dela passar.
type ManagerFactory func(customerID string, creds domain.Credentials) (AdsManager, error)

// ClientFactory permite injetar o cliente remoto nos testes.
type ClientFactory func(cfg *config.Config, creds domain.Credentials, customerID string) googleadsclient.Client

type Manager struct {
	cfg        *config.Config
	creds      domain.Credentials
	customerID string

	clientFactory ClientFactory
	client        googleadsclient.Client
}

// NewManagerFactory devolve a fábrica usada pelos handlers HTTP.
func NewManagerFactory(cfg *config.Config) ManagerFactory {
	return func(customerID string, creds domain.Credentials) (AdsManager, error) {
		return NewManager(cfg, creds, customerID, nil)
	}
}

// NewManager valida o customer ID e as credenciais e devolve a sessão.
// Falhas aqui são sempre ValidationError: a API remota nunca é consultada.
func NewManager(cfg *config.Config, creds domain.Credentials, customerID string, clientFactory ClientFactory) (*Manager, error) {
	normalized, ok := domain.NormalizeCustomerID(customerID)
	if !ok {
		return nil, NewValidationError("Invalid customer ID format: %s. It must be a 10-digit number.", customerID)
	}

	if missing := creds.MissingFields(); len(missing) > 0 {
		return nil, NewValidationError("Missing required field: %s", missing[0])
	}

	if clientFactory == nil {
		clientFactory = func(cfg *config.Config, creds domain.Credentials, customerID string) googleadsclient.Client {
			return googleadsclient.NewClient(cfg, creds, customerID)
		}
	}

	return &Manager{
		cfg:           cfg,
		creds:         creds,
		customerID:    normalized,
		clientFactory: clientFactory,
	}, nil
}

// gadsClient constrói o cliente remoto na primeira operação que precisa dele.
func (m *Manager) gadsClient() googleadsclient.Client {
	if m.client == nil {
		m.client = m.clientFactory(m.cfg, m.creds, m.customerID)
	}
	return m.client
}

const childAccountsQuery = `
	SELECT
		customer_client.id,
		customer_client.descriptive_name
	FROM customer_client
	WHERE customer_client.manager = FALSE`

const campaignListQuery = `
	SELECT
		campaign.id,
		campaign.name,
		campaign_budget.amount_micros
	FROM campaign
	WHERE campaign.status != 'REMOVED'
	ORDER BY campaign.id`

// ListCampaigns enumera as contas filhas não gerenciadoras e consulta as
// campanhas de cada uma; o orçamento é devolvido na unidade monetária
// principal.
func (m *Manager) ListCampaigns() (domain.CampaignListing, error) {
	client := m.gadsClient()

	childRows, err := client.Search(m.customerID, childAccountsQuery)
	if err != nil {
		return nil, m.remoteError("list child accounts", err)
	}

	listing := domain.CampaignListing{}

	for _, childRow := range childRows {
		if childRow.CustomerClient == nil {
			continue
		}
		child := childRow.CustomerClient

		campaignRows, err := client.Search(child.ID, campaignListQuery)
		if err != nil {
			return nil, m.remoteError("list campaigns", err)
		}

		campaigns := make([]domain.CampaignSummary, 0, len(campaignRows))
		for _, row := range campaignRows {
			if row.Campaign == nil {
				continue
			}

			campaignID, _ := strconv.ParseInt(row.Campaign.ID, 10, 64)

			var budget float64
			if row.CampaignBudget != nil && row.CampaignBudget.AmountMicros != "" {
				micros, err := strconv.ParseInt(row.CampaignBudget.AmountMicros, 10, 64)
				if err != nil {
					return nil, m.remoteError("parse campaign budget", err)
				}
				budget = utils.RoundWithTwoDecimalPlace(utils.FromMicros(micros))
			}

			campaigns = append(campaigns, domain.CampaignSummary{
				ID:     campaignID,
				Name:   row.Campaign.Name,
				Budget: budget,
			})
		}

		listing[child.ID] = domain.AccountCampaigns{
			AccountName: child.DescriptiveName,
			Campaigns:   campaigns,
		}
	}

	return listing, nil
}

// CreateCampaign cria primeiro o recurso de orçamento e em seguida a campanha
// que o referencia. A campanha nasce pausada, com lances manuais; nunca é
// ativada automaticamente.
func (m *Manager) CreateCampaign(name string, dailyBudget float64, startDate, endDate time.Time) (string, error) {
	client := m.gadsClient()

	budgetOperation := gadsdomain.CampaignBudgetOperation{
		Create: &gadsdomain.CampaignBudgetResource{
			Name:           fmt.Sprintf("Budget for %s", name),
			AmountMicros:   utils.ToMicros(dailyBudget),
			DeliveryMethod: "STANDARD",
		},
	}

	budgetResponse, err := client.MutateCampaignBudgets(m.customerID, []gadsdomain.CampaignBudgetOperation{budgetOperation})
	if err != nil {
		return "", m.remoteError("create campaign budget", err)
	}

	budgetResourceName := budgetResponse.Results[0].ResourceName

	campaignOperation := gadsdomain.CampaignOperation{
		Create: &gadsdomain.CampaignResource{
			Name:                   name,
			AdvertisingChannelType: "SEARCH",
			Status:                 "PAUSED",
			ManualCPC:              &gadsdomain.ManualCPC{EnhancedCPCEnabled: true},
			CampaignBudget:         budgetResourceName,
			StartDate:              utils.FormatCompactDate(startDate),
			EndDate:                utils.FormatCompactDate(endDate),
		},
	}

	campaignResponse, err := client.MutateCampaigns(m.customerID, []gadsdomain.CampaignOperation{campaignOperation})
	if err != nil {
		// O orçamento acabou de ser criado e fica órfão na conta remota;
		// não há compensação automática
		logrus.WithFields(logrus.Fields{
			"customer_id":     m.customerID,
			"campaign_name":   name,
			"budget_resource": budgetResourceName,
		}).Error("Campanha não criada após criação do orçamento")
		return "", m.remoteError("create campaign", err)
	}

	return campaignResponse.Results[0].ResourceName, nil
}

// UpdateCampaignBudget procura a campanha pelo nome exato entre as não
// removidas e atualiza apenas o valor do orçamento. Campanha ausente não é
// erro: devolve false sem emitir mutação.
func (m *Manager) UpdateCampaignBudget(name string, newBudget float64) (bool, error) {
	client := m.gadsClient()

	query := fmt.Sprintf(`
	SELECT
		campaign.id,
		campaign_budget.resource_name,
		campaign_budget.amount_micros
	FROM campaign
	WHERE campaign.name = '%s'
	AND campaign.status != 'REMOVED'`, escapeGAQLString(name))

	rows, err := client.Search(m.customerID, query)
	if err != nil {
		return false, m.remoteError("find campaign budget", err)
	}

	var budgetResourceName string
	for _, row := range rows {
		if row.CampaignBudget != nil {
			budgetResourceName = row.CampaignBudget.ResourceName
			break
		}
	}

	if budgetResourceName == "" {
		logrus.WithFields(logrus.Fields{
			"customer_id":   m.customerID,
			"campaign_name": name,
		}).Warn("Nenhuma campanha encontrada para atualização de orçamento")
		return false, nil
	}

	updateOperation := gadsdomain.CampaignBudgetOperation{
		Update: &gadsdomain.CampaignBudgetResource{
			ResourceName: budgetResourceName,
			AmountMicros: utils.ToMicros(newBudget),
		},
		// Máscara explícita: somente o valor é tocado, os demais atributos
		// do orçamento ficam intactos
		UpdateMask: "amountMicros",
	}

	if _, err := client.MutateCampaignBudgets(m.customerID, []gadsdomain.CampaignBudgetOperation{updateOperation}); err != nil {
		return false, m.remoteError("update campaign budget", err)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":   m.customerID,
		"campaign_name": name,
	}).Info("Orçamento da campanha atualizado com sucesso")

	return true, nil
}

// findCampaignIDByName devolve o ID da campanha ou vazio quando não existe.
func (m *Manager) findCampaignIDByName(client googleadsclient.Client, name string) (string, error) {
	query := fmt.Sprintf(`
	SELECT campaign.id
	FROM campaign
	WHERE campaign.name = '%s'
	AND campaign.status != 'REMOVED'
	LIMIT 1`, escapeGAQLString(name))

	rows, err := client.Search(m.customerID, query)
	if err != nil {
		return "", err
	}

	for _, row := range rows {
		if row.Campaign != nil {
			return row.Campaign.ID, nil
		}
	}

	return "", nil
}

// CreateSearchAd cria grupo de anúncios, anúncio responsivo e critérios de
// palavra-chave, nesta ordem, cada um em uma mutação própria. Não há
// compensação: uma falha tardia deixa os passos anteriores criados na conta
// remota, e o erro devolvido nomeia o passo que falhou.
func (m *Manager) CreateSearchAd(campaignName string, headlines, descriptions, keywords []string, finalURL string) (string, error) {
	client := m.gadsClient()

	campaignID, err := m.findCampaignIDByName(client, campaignName)
	if err != nil {
		return "", m.remoteError("find campaign", err)
	}

	if campaignID == "" {
		return "", NewNotFoundError("Campaign '%s' not found", campaignName)
	}

	// O timestamp no nome garante unicidade em novas tentativas
	adGroupName := fmt.Sprintf("Ad Group for %s - %d", campaignName, time.Now().Unix())

	adGroupOperation := gadsdomain.AdGroupOperation{
		Create: &gadsdomain.AdGroupResource{
			Name:     adGroupName,
			Campaign: fmt.Sprintf("customers/%s/campaigns/%s", m.customerID, campaignID),
			Type:     "SEARCH_STANDARD",
		},
	}

	adGroupResponse, err := client.MutateAdGroups(m.customerID, []gadsdomain.AdGroupOperation{adGroupOperation})
	if err != nil {
		return "", m.remoteError("create ad group", err)
	}

	adGroupResourceName := adGroupResponse.Results[0].ResourceName

	ad := &gadsdomain.Ad{
		ResponsiveSearchAd: &gadsdomain.ResponsiveSearchAdInfo{},
		FinalURLs:          []string{finalURL},
	}
	for _, headline := range headlines {
		ad.ResponsiveSearchAd.Headlines = append(ad.ResponsiveSearchAd.Headlines, gadsdomain.AdTextAsset{Text: headline})
	}
	for _, description := range descriptions {
		ad.ResponsiveSearchAd.Descriptions = append(ad.ResponsiveSearchAd.Descriptions, gadsdomain.AdTextAsset{Text: description})
	}

	adOperation := gadsdomain.AdGroupAdOperation{
		Create: &gadsdomain.AdGroupAdResource{
			AdGroup: adGroupResourceName,
			Status:  "PAUSED",
			Ad:      ad,
		},
	}

	if _, err := client.MutateAdGroupAds(m.customerID, []gadsdomain.AdGroupAdOperation{adOperation}); err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": m.customerID,
			"ad_group":    adGroupResourceName,
		}).Error("Grupo de anúncios criado, mas a criação do anúncio falhou")
		return "", pkgerrors.Wrapf(m.remoteError("create ad", err), "ad group %s was created", adGroupResourceName)
	}

	criterionOperations := make([]gadsdomain.AdGroupCriterionOperation, 0, len(keywords))
	for _, keyword := range keywords {
		criterionOperations = append(criterionOperations, gadsdomain.AdGroupCriterionOperation{
			Create: &gadsdomain.AdGroupCriterionResource{
				AdGroup: adGroupResourceName,
				Keyword: &gadsdomain.KeywordInfo{
					Text:      keyword,
					MatchType: "EXACT",
				},
			},
		})
	}

	if len(criterionOperations) > 0 {
		if _, err := client.MutateAdGroupCriteria(m.customerID, criterionOperations); err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": m.customerID,
				"ad_group":    adGroupResourceName,
			}).Error("Grupo e anúncio criados, mas a criação das palavras-chave falhou")
			return "", pkgerrors.Wrapf(m.remoteError("create keywords", err), "ad group %s and ad were created", adGroupResourceName)
		}
	}

	return adGroupResourceName, nil
}

// UploadLogo cria um asset de imagem; nenhum vínculo com a campanha é criado.
func (m *Manager) UploadLogo(campaignName string, image []byte) (string, error) {
	client := m.gadsClient()

	assetOperation := gadsdomain.AssetOperation{
		Create: &gadsdomain.AssetResource{
			Name: fmt.Sprintf("%s Logo", campaignName),
			ImageAsset: &gadsdomain.ImageAsset{
				Data:     base64.StdEncoding.EncodeToString(image),
				MimeType: "IMAGE_PNG",
			},
		},
	}

	response, err := client.MutateAssets(m.customerID, []gadsdomain.AssetOperation{assetOperation})
	if err != nil {
		return "", m.remoteError("upload logo asset", err)
	}

	return response.Results[0].ResourceName, nil
}

// UploadPrice cria um asset de preço com uma única oferta carregando o valor.
func (m *Manager) UploadPrice(campaignName string, price float64) (string, error) {
	client := m.gadsClient()

	assetOperation := gadsdomain.AssetOperation{
		Create: &gadsdomain.AssetResource{
			Name: fmt.Sprintf("%s Price", campaignName),
			PriceAsset: &gadsdomain.PriceAssetInfo{
				Type: "SERVICES",
				PriceOfferings: []gadsdomain.PriceOffering{
					{
						Header: campaignName,
						Price: &gadsdomain.Money{
							AmountMicros: utils.ToMicros(price),
							CurrencyCode: m.cfg.GoogleAds.PriceCurrency,
						},
					},
				},
			},
		},
	}

	response, err := client.MutateAssets(m.customerID, []gadsdomain.AssetOperation{assetOperation})
	if err != nil {
		return "", m.remoteError("upload price asset", err)
	}

	return response.Results[0].ResourceName, nil
}

const logoAssetsQuery = `
	SELECT
		asset.resource_name,
		asset.name,
		asset.image_asset.file_size,
		asset.image_asset.full_size.width_pixels,
		asset.image_asset.full_size.height_pixels,
		asset.image_asset.full_size.url
	FROM asset
	WHERE asset.type = IMAGE
	AND asset.name LIKE '%Logo%'`

func (m *Manager) ListLogoAssets() ([]domain.LogoAsset, error) {
	client := m.gadsClient()

	rows, err := client.Search(m.customerID, logoAssetsQuery)
	if err != nil {
		return nil, m.remoteError("list logo assets", err)
	}

	logoAssets := make([]domain.LogoAsset, 0, len(rows))
	for _, row := range rows {
		if row.Asset == nil || row.Asset.ImageAsset == nil {
			continue
		}

		fileSize, _ := strconv.ParseInt(row.Asset.ImageAsset.FileSize, 10, 64)

		logoAsset := domain.LogoAsset{
			ResourceName: row.Asset.ResourceName,
			Name:         row.Asset.Name,
			FileSize:     fileSize,
		}
		if fullSize := row.Asset.ImageAsset.FullSize; fullSize != nil {
			logoAsset.Width = fullSize.WidthPixels
			logoAsset.Height = fullSize.HeightPixels
			logoAsset.URL = fullSize.URL
		}

		logoAssets = append(logoAssets, logoAsset)
	}

	return logoAssets, nil
}

const priceAssetsQuery = `
	SELECT
		asset.resource_name,
		asset.name,
		asset.price_asset.type,
		asset.price_asset.price_offerings
	FROM asset
	WHERE asset.type = PRICE`

func (m *Manager) ListPriceAssets() ([]domain.PriceAsset, error) {
	client := m.gadsClient()

	rows, err := client.Search(m.customerID, priceAssetsQuery)
	if err != nil {
		return nil, m.remoteError("list price assets", err)
	}

	priceAssets := make([]domain.PriceAsset, 0, len(rows))
	for _, row := range rows {
		if row.Asset == nil || row.Asset.PriceAsset == nil {
			continue
		}

		priceAsset := domain.PriceAsset{
			ResourceName: row.Asset.ResourceName,
			Name:         row.Asset.Name,
			Type:         row.Asset.PriceAsset.Type,
		}

		if offerings := row.Asset.PriceAsset.PriceOfferings; len(offerings) > 0 {
			offering := offerings[0]
			priceAsset.Header = offering.Header
			priceAsset.Description = offering.Description
			priceAsset.Unit = offering.Unit
			if offering.Price != nil {
				priceAsset.PriceAmount = utils.FromMicros(offering.Price.AmountMicros)
				priceAsset.CurrencyCode = offering.Price.CurrencyCode
			}
		}

		priceAssets = append(priceAssets, priceAsset)
	}

	return priceAssets, nil
}

// remoteError registra a falha e a propaga sem tradução: erros da plataforma
// chegam ao chamador com os sub-erros por campo, os demais são inesperados.
func (m *Manager) remoteError(operation string, err error) error {
	var apiErr *gadsdomain.APIError
	if pkgerrors.As(err, &apiErr) {
		logrus.WithFields(logrus.Fields{
			"customer_id": m.customerID,
			"operation":   operation,
		}).Errorf("A Google Ads API error occurred: %v", err)
		return err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": m.customerID,
		"operation":   operation,
	}).Errorf("An unexpected error occurred: %v", err)
	return pkgerrors.Wrap(err, operation)
}

// escapeGAQLString prepara um literal de string para interpolação em GAQL.
func escapeGAQLString(value string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
}
