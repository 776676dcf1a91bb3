package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	return w.Body.String()
}

func TestDiagnosisProcessed(t *testing.T) {
	m := NewMetrics()

	m.DiagnosisProcessed("Rogers Ratio Method (R1/R2/R5)", "T1")
	m.DiagnosisProcessed("Rogers Ratio Method (R1/R2/R5)", "T1")
	m.DiagnosisProcessed("Doernenburg's Method", "Inconclusive")

	body := scrape(t, m)
	if !strings.Contains(body, `dga_diagnoses_total{fault="T1",method="Rogers Ratio Method (R1/R2/R5)"} 2`) {
		t.Errorf("exposition missing Rogers counter, got:\n%s", body)
	}
	if !strings.Contains(body, `dga_diagnoses_total{fault="Inconclusive",method="Doernenburg's Method"} 1`) {
		t.Errorf("exposition missing Doernenburg counter, got:\n%s", body)
	}
}

func TestWrapHandler(t *testing.T) {
	m := NewMetrics()

	wrapped := m.WrapHandler("/api/diagnose", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest("GET", "/api/diagnose?h2=-1", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", w.Code)
	}

	body := scrape(t, m)
	if !strings.Contains(body, `http_requests_total{route="/api/diagnose",status="400"} 1`) {
		t.Errorf("exposition missing request counter, got:\n%s", body)
	}
	if !strings.Contains(body, `http_request_duration_seconds_count{route="/api/diagnose"} 1`) {
		t.Errorf("exposition missing duration histogram, got:\n%s", body)
	}
}

func TestMultipleInstancesCoexist(t *testing.T) {
	// Instance registries must not collide in a single process
	a := NewMetrics()
	b := NewMetrics()

	a.DiagnosisProcessed("Duval's Pentagon (Conceptual)", "T2")

	if body := scrape(t, b); strings.Contains(body, `fault="T2"`) {
		t.Error("second instance observed counts from the first")
	}
}
