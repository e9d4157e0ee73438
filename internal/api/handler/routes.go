package handler

import (
	"net/http"

	"github.com/vfg2006/keyword-bid-sync/infrastructure/repository"
	"github.com/vfg2006/keyword-bid-sync/internal/api/handler/router"
	"github.com/vfg2006/keyword-bid-sync/internal/usecases/authenticating"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func BidSync(scheduler BidSyncScheduler, runs repository.SyncRunRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/bid-sync/run",
			Method:  http.MethodPost,
			Handler: RunBidSync(scheduler),
		},
		{
			Path:    "/v1/bid-sync/status",
			Method:  http.MethodGet,
			Handler: GetBidSyncStatus(scheduler),
		},
		{
			Path:    "/v1/bid-sync/runs",
			Method:  http.MethodGet,
			Handler: ListBidSyncRuns(runs),
		},
	}
}

func AdGroupMappings(mappings repository.AdGroupMappingRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ad-group-mappings",
			Method:  http.MethodGet,
			Handler: ListAdGroupMappings(mappings),
		},
		{
			Path:    "/v1/ad-group-mappings",
			Method:  http.MethodPut,
			Handler: SaveAdGroupMapping(mappings),
		},
		{
			Path:    "/v1/ad-group-mappings/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAdGroupMapping(mappings),
		},
	}
}
