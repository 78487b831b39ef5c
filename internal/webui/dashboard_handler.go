package webui

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/export"
	"simdshare.ubdc.ac.uk/internal/figures"
	"simdshare.ubdc.ac.uk/internal/logging"
	"simdshare.ubdc.ac.uk/internal/shares"
	"simdshare.ubdc.ac.uk/internal/utils"
)

type selectOption struct {
	Label    string
	Value    string
	Selected bool
}

type downloadLink struct {
	Label string
	URL   string
}

type dashboardData struct {
	Title       figures.TitleText
	FontColor   template.CSS
	Background  template.CSS
	FieldErrors map[string][]string
	Bands       []selectOption
	Domains     []selectOption
	Shares      []selectOption
	Key         string
	Chart       template.URL
	Rows        []shares.CouncilShare
	Unmapped    []string
	Downloads   []downloadLink
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	logger := logging.ForComponent(logging.FromContext(r.Context()), "webui")
	manager := webUI.SimdManager
	table := manager.Table()

	query, fieldErrors := utils.ParseQuery(r.URL.Query(), webUI.DefaultQuery(table), table.RankColumns())
	if len(fieldErrors) > 0 {
		// Show the defaults alongside the errors rather than an empty page.
		query = webUI.DefaultQuery(table)
	}

	result, err := manager.Shares(query)
	if err != nil {
		logging.LogError(logger, "failed to compute shares for dashboard", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	dash := webUI.Config.Dashboard
	title := figures.Title(dash.Title, query)

	var chart bytes.Buffer
	if err := figures.RenderBarPNG(&chart, result, figures.ChartOptions{Title: title.Text}); err != nil {
		logging.LogError(logger, "failed to render dashboard chart", err)
	}

	key := r.URL.Query().Get("key")
	data := dashboardData{
		Title:       title,
		FontColor:   template.CSS(dash.FontColor),
		Background:  template.CSS(dash.Background),
		FieldErrors: fieldErrors,
		Bands:       bandOptions(query.Band),
		Domains:     domainOptions(table.RankColumns(), query.Domain),
		Shares:      shareOptions(query.Kind),
		Key:         key,
		Rows:        result.Rows,
		Unmapped:    manager.Join().Unmapped,
		Downloads:   downloadLinks(query, key),
	}
	if chart.Len() > 0 {
		data.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(chart.Bytes()))
	}

	tmpl, err := template.ParseFS(templateFS, "dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy",
		"default-src 'none'; img-src data:; style-src 'unsafe-inline'; form-action 'self'; frame-ancestors 'none';")
	if err := tmpl.Execute(w, data); err != nil {
		logging.LogError(logger, "failed to render dashboard", err)
	}
}

func bandOptions(selected shares.Band) []selectOption {
	options := make([]selectOption, 0, len(shares.Bands))
	for _, band := range shares.Bands {
		options = append(options, selectOption{Label: string(band), Value: band.ID(), Selected: band == selected})
	}
	return options
}

func domainOptions(columns []string, selected string) []selectOption {
	options := make([]selectOption, 0, len(columns))
	for _, column := range columns {
		options = append(options, selectOption{Label: datazone.DomainLabel(column), Value: column, Selected: column == selected})
	}
	return options
}

func shareOptions(selected shares.ShareKind) []selectOption {
	options := make([]selectOption, 0, len(shares.ShareKinds))
	for _, kind := range shares.ShareKinds {
		options = append(options, selectOption{Label: kind.Label(), Value: string(kind), Selected: kind == selected})
	}
	return options
}

func downloadLinks(query shares.Query, key string) []downloadLink {
	params := url.Values{
		"band":   {query.Band.ID()},
		"domain": {query.Domain},
		"share":  {string(query.Kind)},
	}
	if key != "" {
		params.Set("key", key)
	}

	links := make([]downloadLink, 0, len(export.Formats))
	for _, format := range export.Formats {
		links = append(links, downloadLink{
			Label: strings.ToUpper(string(format)),
			URL:   "/api/simd/export/" + string(format) + "?" + params.Encode(),
		})
	}
	return links
}
