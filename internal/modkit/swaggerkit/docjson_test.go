package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestServeDocJSON_BaseSpec(t *testing.T) {
	rr := httptest.NewRecorder()
	serveDocJSON()(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("spec is not JSON: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	comps := spec["components"].(map[string]any)
	schemas := comps["schemas"].(map[string]any)
	if schemas["ErrorResponse"] == nil {
		t.Fatalf("ErrorResponse schema missing")
	}
}

func TestMutatorsRunAndGetDefaultResponses(t *testing.T) {
	orig := mutators
	t.Cleanup(func() { mutators = orig })
	mutators = nil

	Register(func(spec map[string]any) {
		paths := spec["paths"].(map[string]any)
		paths["/quant/curve"] = map[string]any{
			"post": map[string]any{
				"responses": map[string]any{
					"200": map[string]any{"description": "ok"},
				},
			},
		}
	})

	rr := httptest.NewRecorder()
	serveDocJSON()(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))

	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("spec is not JSON: %v", err)
	}
	op := spec["paths"].(map[string]any)["/quant/curve"].(map[string]any)["post"].(map[string]any)
	responses := op["responses"].(map[string]any)
	for _, status := range []string{"200", "400", "500"} {
		if responses[status] == nil {
			t.Fatalf("missing %s response: %v", status, responses)
		}
	}
}

func TestRegisterIgnoresNil(t *testing.T) {
	orig := mutators
	t.Cleanup(func() { mutators = orig })
	mutators = nil

	Register(nil)
	if len(mutators) != 0 {
		t.Fatalf("nil mutator should not register")
	}
}
