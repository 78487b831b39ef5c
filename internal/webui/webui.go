package webui

import "simdshare.ubdc.ac.uk/internal/app"

// WebUI serves the HTML pages: the dashboard and the debug dumps.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
