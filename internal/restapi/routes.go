package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) handle(router *httprouter.Router, route, path string, handler handlerFunc) {
	router.Handler(http.MethodGet, path, instrument(route, validateAPIKey(api, handler)))
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	api.handle(router, "options", "/api/simd/options.json", api.optionsHandler)
	api.handle(router, "shares", "/api/simd/shares.json", api.sharesHandler)
	api.handle(router, "figures", "/api/simd/figures.json", api.figuresHandler)
	api.handle(router, "shares_chart", "/api/simd/shares-chart.png", api.sharesChartHandler)
	api.handle(router, "export", "/api/simd/export/:format", api.exportHandler)
	api.handle(router, "zones_for_council", "/api/simd/zones-for-council/:council", api.zonesForCouncilHandler)
	api.handle(router, "boundaries", "/api/simd/boundaries.json", api.boundariesHandler)
	api.handle(router, "status", "/api/simd/status.json", api.statusHandler)
	api.handle(router, "current_time", "/api/simd/current-time.json", api.currentTimeHandler)

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Middleware wraps the router in the server's middleware chain, outermost first:
// recovery, request logging, security headers and CORS, compression, rate limiting.
func (api *RestAPI) Middleware(next http.Handler) http.Handler {
	handler := next
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return api.recoverPanic(handler)
}
