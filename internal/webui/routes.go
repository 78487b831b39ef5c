package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
