package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-scheduler/config"
	"ai-scheduler/pkg/log"
	"ai-scheduler/pkg/nlp"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	parser, err := nlp.New(nlp.DefaultConfig())
	if err != nil {
		t.Fatalf("nlp.New: %v", err)
	}
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		App:         config.AppConfig{AllowedOrigins: []string{"http://app.local"}},
		Cookie:      config.CookieConfig{Name: "user_id"},
		Parser:      parser,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validates(t *testing.T) {
	parser, _ := nlp.New(nlp.DefaultConfig())
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing port", Config{Mode: "test", Parser: parser}},
		{"missing mode", Config{Port: 1, Parser: parser}},
		{"missing parser", Config{Port: 1, Mode: "test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: missing X-Request-ID", path)
		}
	}
}

func TestParseWithoutStorage(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewBufferString(`{"command":"Standup with a@b.co tomorrow 10am"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var body struct {
		Data nlp.ParseResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data.Attendees) != 1 || body.Data.TimeZone != "America/Los_Angeles" {
		t.Errorf("result = %+v", body.Data)
	}
}

func TestOptionalDomains(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodPost, "/api/schedule", http.StatusUnauthorized},
		{http.MethodGet, "/api/history", http.StatusServiceUnavailable},
		{http.MethodGet, "/auth/start", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, w.Code, tt.want)
		}
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	parser, _ := nlp.New(nlp.DefaultConfig())
	srv, err := New(log.NewNop(), Config{Port: 18089, Mode: "test", Parser: parser})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
