package scheme

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
)

func newTestHandler() (*Handler, *Service, *echo.Echo) {
	svc, _, _ := newTestService()
	return NewHandler(svc, browse.DefaultLimits), svc, echo.New()
}

func TestHandler_List_StatusTab(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/schemes?status=pending", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res browse.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("expected 2 pending applications, got %d", res.Total)
	}
	if len(res.Rows) > 0 && res.Rows[0].ID != "4" {
		t.Errorf("expected newest application first, got %s", res.Rows[0].ID)
	}
}

func TestHandler_List_InvalidStatus(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/schemes?status=archived", nil)
	err := h.List(e.NewContext(req, httptest.NewRecorder()))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func reviewContext(e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestHandler_Approve(t *testing.T) {
	h, svc, e := newTestHandler()
	c, rec := reviewContext(e, "1")

	if err := h.Approve(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	var p confirm.Prompt
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Token == "" || p.Title != "Approve Scheme" {
		t.Errorf("unexpected prompt %+v", p)
	}
	if a, _ := svc.Get("1"); a.Status != StatusPending {
		t.Error("expected application to stay pending until confirmed")
	}
}

func TestHandler_Reject_AlreadyDecided(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := reviewContext(e, "2")
	err := h.Reject(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_Reject_Unknown(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := reviewContext(e, "missing")
	if err := h.Reject(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := reviewContext(e, "missing")
	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
