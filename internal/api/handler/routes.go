package handler

import (
	"net/http"

	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/api/handler/router"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/authorizing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authorization(service authorizing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/authenticate",
			Method:  http.MethodPost,
			Handler: Authenticate(service),
		},
		{
			Path:    "/oauth2callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(service),
		},
		{
			Path:    "/check_auth_status/:state",
			Method:  http.MethodGet,
			Handler: CheckAuthStatus(service),
		},
		{
			Path:    "/complete_auth_and_get_campaigns",
			Method:  http.MethodPost,
			Handler: CompleteAuthAndGetCampaigns(service),
		},
	}
}

func Campaigns(factory advertising.ManagerFactory) []router.Route {
	return []router.Route{
		{
			Path:    "/get_campaigns",
			Method:  http.MethodPost,
			Handler: GetCampaigns(factory),
		},
		{
			Path:    "/create_campaign",
			Method:  http.MethodPost,
			Handler: CreateCampaign(factory),
		},
		{
			Path:    "/update_campaign",
			Method:  http.MethodPost,
			Handler: UpdateCampaign(factory),
		},
	}
}

func Ads(factory advertising.ManagerFactory) []router.Route {
	return []router.Route{
		{
			Path:    "/create_ad",
			Method:  http.MethodPost,
			Handler: CreateAd(factory),
		},
	}
}

func Assets(factory advertising.ManagerFactory) []router.Route {
	return []router.Route{
		{
			Path:    "/upload_logo",
			Method:  http.MethodPost,
			Handler: UploadLogo(factory),
		},
		{
			Path:    "/upload_price",
			Method:  http.MethodPost,
			Handler: UploadPrice(factory),
		},
		{
			Path:    "/get_logo_assets",
			Method:  http.MethodPost,
			Handler: GetLogoAssets(factory),
		},
		{
			Path:    "/get_price_assets",
			Method:  http.MethodPost,
			Handler: GetPriceAssets(factory),
		},
	}
}
