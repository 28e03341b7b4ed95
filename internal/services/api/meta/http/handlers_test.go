package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "copyquant/internal/platform/net/http"
	metahttp "copyquant/internal/services/api/meta/http"
)

func newRouter(started time.Time) http.Handler {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Route("/meta", func(rr phttp.Router) {
		metahttp.Register(rr, metahttp.Deps{ServiceName: "copyquant-api", StartedAt: started})
	})
	return m
}

func get(t *testing.T, h http.Handler, path string) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, rr.Body.String())
	}
	data, _ := env.Data.(map[string]any)
	return rr.Code, data
}

func TestHealth(t *testing.T) {
	h := newRouter(time.Now().Add(-time.Minute))
	code, data := get(t, h, "/meta/health")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if data["ok"] != true || data["service"] != "copyquant-api" {
		t.Fatalf("data = %v", data)
	}
}

func TestReady(t *testing.T) {
	h := newRouter(time.Now())
	code, data := get(t, h, "/meta/ready")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if data["status"] != "ok" {
		t.Fatalf("data = %v", data)
	}
}

func TestVersion(t *testing.T) {
	h := newRouter(time.Now())
	code, data := get(t, h, "/meta/version")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if data["service"] != "copyquant-api" {
		t.Fatalf("data = %v", data)
	}
}

func TestService(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	h := newRouter(started)
	code, data := get(t, h, "/meta/service")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if up, _ := data["uptime"].(float64); up < 89 {
		t.Fatalf("uptime = %v", data["uptime"])
	}
}
