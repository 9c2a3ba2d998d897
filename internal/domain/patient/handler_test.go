package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

func TestHandler_List(t *testing.T) {
	h := NewHandler(NewService(), browse.DefaultLimits)
	q := url.Values{"q": {"छत्तीसगढ़"}, "sort": {"name"}}
	req := httptest.NewRequest(http.MethodGet, "/doctor/patients?"+q.Encode(), nil)
	rec := httptest.NewRecorder()

	if err := h.List(echo.New().NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res browse.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Total != 4 {
		t.Errorf("expected all 4 patients, got %d", res.Total)
	}
	if res.Sort != "name" {
		t.Errorf("expected sort by name, got %q", res.Sort)
	}
}

func TestHandler_DefaultSortNewestVisit(t *testing.T) {
	h := NewHandler(NewService(), browse.DefaultLimits)
	rec := httptest.NewRecorder()
	h.List(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/doctor/patients", nil), rec))

	var res browse.Result
	json.Unmarshal(rec.Body.Bytes(), &res)
	if len(res.Rows) == 0 || res.Rows[0].ID != "4" {
		t.Errorf("expected most recent visit first, got %+v", res.Rows)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h := NewHandler(NewService(), browse.DefaultLimits)
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("99")
	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
