package portal

import (
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gridsentry/dgaportal/internal/constants"
	"github.com/gridsentry/dgaportal/internal/log"
	"github.com/gridsentry/dgaportal/pkg/config"
	"github.com/gridsentry/dgaportal/pkg/dga"
	"github.com/gridsentry/dgaportal/pkg/faultmap"
	"github.com/gridsentry/dgaportal/pkg/plot"
	"github.com/gridsentry/dgaportal/pkg/responseformat"
)

// Handlers contains the HTTP handlers for the portal
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(controller *Controller) *Handlers {
	return &Handlers{
		controller: controller,
		formatter:  responseformat.NewFormatter(),
	}
}

// gasParams maps query parameter names to Reading fields, in form order.
var gasParams = []string{"h2", "ch4", "c2h4", "c2h2", "co"}

// readingFromQuery parses gas concentrations from query parameters.
// Missing parameters stay zero; negative or non-numeric values are an
// error.
func readingFromQuery(q url.Values) (dga.Reading, error) {
	var reading dga.Reading
	dst := map[string]*float64{
		"h2":   &reading.H2,
		"ch4":  &reading.CH4,
		"c2h4": &reading.C2H4,
		"c2h2": &reading.C2H2,
		"co":   &reading.CO,
	}
	for _, name := range gasParams {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return reading, fmt.Errorf("invalid %s value %q", name, raw)
		}
		if value < 0 {
			return reading, fmt.Errorf("%s must be non-negative, got %s", name, raw)
		}
		*dst[name] = value
	}
	return reading, nil
}

// validateReading rejects readings that violate the non-negativity
// contract. POST bodies bypass query parsing, so they are checked here.
func validateReading(r dga.Reading) error {
	if r.H2 < 0 || r.CH4 < 0 || r.C2H4 < 0 || r.C2H2 < 0 || r.CO < 0 {
		return fmt.Errorf("gas concentrations must be non-negative")
	}
	return nil
}

// formReading converts form gas values to a Reading. O2 is display-only
// context and never participates in diagnosis.
func formReading(f config.GasDefaultsData) dga.Reading {
	return dga.Reading{H2: f.H2, CH4: f.CH4, C2H4: f.C2H4, C2H2: f.C2H2, CO: f.CO}
}

// buildReport runs every classifier against the reading and assembles
// the diagnose response payload.
func (h *Handlers) buildReport(reading dga.Reading) DiagnoseReport {
	diagnoses := dga.DiagnoseAll(reading)

	report := DiagnoseReport{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Reading:     reading,
		TCG:         reading.TCG(),
		Diagnoses:   make([]DiagnosisReport, 0, len(diagnoses)),
	}
	for _, d := range diagnoses {
		report.Diagnoses = append(report.Diagnoses, DiagnosisReport{Diagnosis: d, Summary: d.String()})
		h.controller.metrics.DiagnosisProcessed(d.Method, d.Fault)
	}
	return report
}

// Diagnose produces the full diagnostic report for a reading supplied
// via query parameters (GET) or a JSON body (POST)
func (h *Handlers) Diagnose(w http.ResponseWriter, req *http.Request) {
	var reading dga.Reading

	switch req.Method {
	case http.MethodPost:
		if err := json.NewDecoder(req.Body).Decode(&reading); err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, fmt.Sprintf("invalid reading body: %v", err))
			return
		}
		if err := validateReading(reading); err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
			return
		}
	default:
		var err error
		reading, err = readingFromQuery(req.URL.Query())
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
			return
		}
	}

	report := h.buildReport(reading)

	if err := h.formatter.WriteResponse(w, req, report, nil); err != nil {
		log.Errorf("error writing diagnose response: %v", err)
	}
}

// GetPlotData returns the plot-ready projection of a catalog triangle
// together with the catalog regions themselves
func (h *Handlers) GetPlotData(w http.ResponseWriter, req *http.Request) {
	key := mux.Vars(req)["triangle"]
	tri, ok := faultmap.Lookup(key)
	if !ok {
		h.formatter.WriteError(w, req, http.StatusNotFound, fmt.Sprintf("unknown triangle %q", key))
		return
	}

	reading, err := readingFromQuery(req.URL.Query())
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
		return
	}

	payload := PlotResponse{
		Plot:    plot.Build(tri, plotTitle(key), sampleFor(key, reading)),
		Catalog: tri,
	}
	if err := h.formatter.WriteResponse(w, req, payload, nil); err != nil {
		log.Errorf("error writing plot response: %v", err)
	}
}

// GetPlotSVG renders a catalog triangle with the sample marker as a
// standalone SVG document
func (h *Handlers) GetPlotSVG(w http.ResponseWriter, req *http.Request) {
	key := mux.Vars(req)["triangle"]
	tri, ok := faultmap.Lookup(key)
	if !ok {
		http.NotFound(w, req)
		return
	}

	reading, err := readingFromQuery(req.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, plot.Build(tri, plotTitle(key), sampleFor(key, reading)).SVG())
}

// GetStatus reports portal health, version, and uptime
func (h *Handlers) GetStatus(w http.ResponseWriter, req *http.Request) {
	status := StatusResponse{
		Status:  "ok",
		Version: constants.Version,
		Uptime:  time.Since(h.controller.started).Round(time.Second).String(),
	}
	if err := h.formatter.WriteResponse(w, req, status, nil); err != nil {
		log.Errorf("error writing status response: %v", err)
	}
}

// summaryRow is one line of the fault analysis summary table.
type summaryRow struct {
	Model     string
	Diagnosis string
}

// ratioRow is one line of a ratio detail table.
type ratioRow struct {
	Name      string
	Value     string
	Threshold string
}

// dashboardData feeds portal.html.tmpl.
type dashboardData struct {
	PageTitle string
	Version   string
	Form      config.GasDefaultsData
	TCG       string
	Analyzed  bool

	Summary      []summaryRow
	TriangleOne  htmltemplate.HTML
	TriangleFour htmltemplate.HTML

	RogersDiagnosis string
	RogersRatios    []ratioRow

	DoernenburgDiagnosis string
	DoernenburgRatios    []ratioRow

	PentagonDiagnosis string
}

// doernenburgThresholds are the guidance column entries for the first
// three Doernenburg ratios, as presented on the dashboard.
var doernenburgThresholds = []string{"> 1.0 (for T2)", "> 0.3 (for D1/D2)", "< 0.7 (for D1)"}

// ServeDashboard serves the DGA analysis dashboard. Submitting the gas
// input form reloads the page with the reading in the query string, so
// every analysis is a plain idempotent GET.
func (h *Handlers) ServeDashboard(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	data := dashboardData{
		PageTitle: h.controller.portalConfig.PageTitle,
		Version:   constants.Version,
		Form:      h.controller.gasDefaults,
		Analyzed:  q.Get("analyze") != "",
	}

	if data.Analyzed {
		reading, err := readingFromQuery(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data.Form.H2 = reading.H2
		data.Form.CH4 = reading.CH4
		data.Form.C2H4 = reading.C2H4
		data.Form.C2H2 = reading.C2H2
		data.Form.CO = reading.CO
		h.populateAnalysis(&data, reading)
	}

	data.TCG = humanize.CommafWithDigits(formReading(data.Form).TCG(), 1) + " ppm"

	view := htmltemplate.Must(htmltemplate.New("portal.html.tmpl").ParseFS(*h.controller.FS, "portal.html.tmpl"))

	w.Header().Set("Content-Type", "text/html")
	err := view.Execute(w, data)
	if err != nil {
		log.Error("error executing portal template:", err)
		return
	}
}

// populateAnalysis fills the analysis sections of the dashboard: the
// summary table, both triangle plots, and the per-method detail views.
func (h *Handlers) populateAnalysis(data *dashboardData, reading dga.Reading) {
	report := h.buildReport(reading)

	for _, d := range report.Diagnoses {
		data.Summary = append(data.Summary, summaryRow{Model: d.Method, Diagnosis: d.Summary})

		switch d.Method {
		case dga.MethodRogersRatio:
			data.RogersDiagnosis = d.Summary
			for _, r := range d.Ratios {
				data.RogersRatios = append(data.RogersRatios, ratioRow{
					Name:  r.Name,
					Value: strconv.FormatFloat(r.Value, 'f', 2, 64),
				})
			}
		case dga.MethodDoernenburg:
			data.DoernenburgDiagnosis = d.Summary
			for i, t := range doernenburgThresholds {
				if i >= len(d.Ratios) {
					break
				}
				data.DoernenburgRatios = append(data.DoernenburgRatios, ratioRow{
					Name:      d.Ratios[i].Name,
					Value:     strconv.FormatFloat(d.Ratios[i].Value, 'f', 2, 64),
					Threshold: t,
				})
			}
		case dga.MethodDuvalPentagon:
			data.PentagonDiagnosis = d.Summary
		}
	}

	t1 := plot.Build(faultmap.Triangle1(), plotTitle("t1"), sampleFor("t1", reading))
	t4 := plot.Build(faultmap.Triangle4(), plotTitle("t4"), sampleFor("t4", reading))
	data.TriangleOne = htmltemplate.HTML(t1.SVG())
	data.TriangleFour = htmltemplate.HTML(t4.SVG())
}
