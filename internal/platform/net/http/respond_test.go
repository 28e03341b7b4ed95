package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "copyquant/internal/platform/errors"
	cqnet "copyquant/internal/platform/net"
	phttp "copyquant/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req = req.WithContext(cqnet.WithRequest(req.Context(), rid, ""))
	return req
}

func TestJSONHelper(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.RespondOK(rec, req, map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondError_CodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		wire perr.ErrorCode
	}{
		{"validation", perr.Validationf("bad input"), http.StatusBadRequest, perr.ErrorCodeValidation},
		{"fit", perr.Fitf("degenerate"), http.StatusUnprocessableEntity, perr.ErrorCodeFit},
		{"json", perr.JSONErrf("bad json"), http.StatusBadRequest, perr.ErrorCodeJSON},
		{"not found", perr.NotFoundf("gone"), http.StatusNotFound, perr.ErrorCodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := reqWithReqID("POST", "/x", "rid-2")
			phttp.RespondError(rec, req, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d", rec.Code, tc.code)
			}
			var env phttp.Envelope
			_ = json.Unmarshal(rec.Body.Bytes(), &env)
			if env.Code != tc.wire || env.Error == "" || env.Data != nil {
				t.Fatalf("bad envelope: %+v", env)
			}
		})
	}
}

func TestHandleReturnStyle(t *testing.T) {
	// success
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]int{"n": 1})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/x", "rid-3"))
	if rec.Code != http.StatusOK {
		t.Fatalf("OK code: %d", rec.Code)
	}

	// error body drives status
	h = phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.Fitf("flat"))
	})
	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/x", "rid-4"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Error code: %d", rec.Code)
	}

	// no content writes an empty body
	h = phttp.Handle(func(r *http.Request) phttp.Response { return phttp.NoContent() })
	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("DELETE", "/x", "rid-5"))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("NoContent: code %d body %q", rec.Code, rec.Body.String())
	}
}
