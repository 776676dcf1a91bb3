package responseformat

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type testPayload struct {
	Fault string  `json:"fault"`
	TCG   float64 `json:"tcg"`
}

func TestWriteResponseJSON(t *testing.T) {
	f := NewFormatter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/diagnose", nil)

	err := f.WriteResponse(w, req, testPayload{Fault: "T1", TCG: 985.5}, nil)
	if err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected %q", ct, "application/json")
	}

	var got testPayload
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got.Fault != "T1" || got.TCG != 985.5 {
		t.Errorf("decoded payload = %+v, expected {T1 985.5}", got)
	}
}

func TestWriteResponseMsgPack(t *testing.T) {
	f := NewFormatter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/diagnose?format=msgpack", nil)

	err := f.WriteResponse(w, req, testPayload{Fault: "D2", TCG: 120}, nil)
	if err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/x-msgpack" {
		t.Errorf("Content-Type = %q, expected %q", ct, "application/x-msgpack")
	}

	// Decode with the same json struct tags used for encoding
	var got testPayload
	decoder := msgpack.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	decoder.SetCustomStructTag("json")
	if err := decoder.Decode(&got); err != nil {
		t.Fatalf("response is not valid MessagePack: %v", err)
	}
	if got.Fault != "D2" || got.TCG != 120 {
		t.Errorf("decoded payload = %+v, expected {D2 120}", got)
	}
}

func TestWriteResponseCustomHeaders(t *testing.T) {
	f := NewFormatter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/status", nil)

	err := f.WriteResponse(w, req, testPayload{}, map[string]string{"Cache-Control": "no-cache"})
	if err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}

	if cc := w.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("Cache-Control = %q, expected %q", cc, "no-cache")
	}
	if cors := w.Header().Get("Access-Control-Allow-Origin"); cors != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, expected %q", cors, "*")
	}
}

func TestWriteError(t *testing.T) {
	f := NewFormatter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/diagnose?h2=-1", nil)

	err := f.WriteError(w, req, 400, "gas concentrations must be non-negative")
	if err != nil {
		t.Fatalf("WriteError() error = %v", err)
	}

	if w.Code != 400 {
		t.Errorf("status = %d, expected 400", w.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("error response is not valid JSON: %v", err)
	}
	if got["error"] != "gas concentrations must be non-negative" {
		t.Errorf("error message = %q, expected %q", got["error"], "gas concentrations must be non-negative")
	}
}
