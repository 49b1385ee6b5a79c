package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/peptikit/peptigraph/internal/server/history"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{History: history.NewMemoryStore()})
}

func postConvert(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestConvert(t *testing.T) {
	s := newTestServer(t)
	w := postConvert(t, s, `{"sequence": "AG"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp convertResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SMILES != "N[C@@H](C)C(=O)NCC(=O)O" {
		t.Errorf("smiles = %q", resp.SMILES)
	}
	if resp.AtomCount != 10 {
		t.Errorf("atom_count = %d, want 10", resp.AtomCount)
	}
	if resp.ID == "" {
		t.Error("id should be set")
	}
}

func TestConvertWithCrossLink(t *testing.T) {
	s := newTestServer(t)
	w := postConvert(t, s, `{"sequence": "CC", "crosslinks": ["cystine:1:2"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp convertResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.SMILES != "N[C@@H](CS3)C(=O)N[C@@H](CS3)C(=O)O" {
		t.Errorf("smiles = %q", resp.SMILES)
	}
}

func TestConvertBadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "malformed json", body: `{`, code: "INVALID_INPUT"},
		{name: "missing sequence", body: `{}`, code: "INVALID_INPUT"},
		{name: "bad residue", body: `{"sequence": "AXG"}`, code: "INVALID_SEQUENCE"},
		{name: "bad crosslink pairing", body: `{"sequence": "GC", "crosslinks": ["cystine:1:2"]}`, code: "INVALID_CROSSLINK"},
		{name: "out of range position", body: `{"sequence": "CC", "crosslinks": ["cystine:1:9"]}`, code: "INVALID_POSITION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postConvert(t, s, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}
			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Code, tt.code)
			}
		})
	}
}

func TestGetReplay(t *testing.T) {
	s := newTestServer(t)
	w := postConvert(t, s, `{"sequence": "G"}`)
	var resp convertResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/convert/"+resp.ID, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var entry history.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry.SMILES != "NCC(=O)O" {
		t.Errorf("replayed smiles = %q", entry.SMILES)
	}
	if entry.Sequence != "G" {
		t.Errorf("replayed sequence = %q", entry.Sequence)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/convert/nope", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestList(t *testing.T) {
	s := newTestServer(t)
	postConvert(t, s, `{"sequence": "G"}`)
	postConvert(t, s, `{"sequence": "A"}`)

	req := httptest.NewRequest(http.MethodGet, "/v1/convert", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var entries []history.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
}
