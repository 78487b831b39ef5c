package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html dashboard.html
var templateFS embed.FS

const debugZoneLimit = 100

var debugDataTypes = []string{"zones", "councils", "domains", "boundaries", "unmapped", "tables", "stats"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'none';")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title:     title,
		Pre:       content,
		DataTypes: debugDataTypes,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")
	manager := webUI.SimdManager

	var data interface{}
	var title string

	switch dataType {
	case "zones":
		table := manager.Table()
		limit := min(table.Len(), debugZoneLimit)
		records := make([]interface{}, 0, limit)
		for i := 0; i < limit; i++ {
			records = append(records, table.Record(i))
		}
		data = records
		title = "SIMD - Data Zones (first 100)"
	case "councils":
		data = manager.Table().CouncilTotals()
		title = "SIMD - Council Totals"
	case "domains":
		data = manager.Table().RankColumns()
		title = "SIMD - Domain Rank Columns"
	case "boundaries":
		if set := manager.Boundaries(); set != nil {
			data = set.Councils()
		} else {
			data = map[string]string{"error": "no boundaries file is loaded"}
		}
		title = "Boundaries - Councils"
	case "unmapped":
		data = manager.Join()
		title = "Boundaries - Join Result"
	case "tables":
		counts, err := manager.ZoneDB.TableCounts(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = counts
		title = "SQLite - Table Counts"
	case "stats":
		data = manager.Statistics(r.Context())
		title = "SIMD - Dataset Statistics"
	default:
		data = map[string]string{
			"error": "Please use one of the following: zones, councils, domains, boundaries, unmapped, tables, stats.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
