package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"copyquant/internal/modkit/module"
	"copyquant/internal/platform/config"
	phttp "copyquant/internal/platform/net/http"
	"copyquant/internal/services/api"
)

func mount(t *testing.T) http.Handler {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	m := chi.NewRouter()
	api.Mount(phttp.AdaptChi(m), api.Options{
		Config:         config.New().Prefix("CORE_API_"),
		EnableSwagger:  true,
		EnableProfiler: false,
	})
	return m
}

func TestMount_MetaAndQuantLive(t *testing.T) {
	h := mount(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/meta/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("health status = %d body %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/quant/copies/length",
		strings.NewReader(`{"concentration_ng_per_ul":10,"length_bp":500}`),
	)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("copies status = %d body %s", rr.Code, rr.Body.String())
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rr.Body.Bytes(), &env)
	if env.Data == nil {
		t.Fatalf("no data: %s", rr.Body.String())
	}
}

func TestMount_RegistersModulePorts(t *testing.T) {
	_ = mount(t)

	if _, ok := module.PortsAs[any]("quant"); !ok {
		t.Fatalf("quant ports not registered")
	}
}

func TestMount_SwaggerSpecServed(t *testing.T) {
	h := mount(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "copyquant API") {
		t.Fatalf("unexpected spec: %s", rr.Body.String())
	}
}
