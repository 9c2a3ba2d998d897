package report

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func exportContext(typ string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("type")
	c.SetParamValues(typ)
	return c, rec
}

func TestHandler_Export(t *testing.T) {
	h := NewHandler(newTestService())
	c, rec := exportContext("monthly")

	if err := h.Export(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != `attachment; filename="monthly-report.csv"` {
		t.Errorf("unexpected disposition %q", got)
	}
	if !strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/csv") {
		t.Errorf("unexpected content type %q", rec.Header().Get(echo.HeaderContentType))
	}
	if !strings.Contains(rec.Body.String(), "Jun,1,95,6") {
		t.Errorf("expected June row, got %q", rec.Body.String())
	}
}

func TestHandler_Export_UnknownType(t *testing.T) {
	h := NewHandler(newTestService())
	c, _ := exportContext("weekly")
	err := h.Export(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Monthly_InvalidPeriod(t *testing.T) {
	h := NewHandler(newTestService())
	req := httptest.NewRequest(http.MethodGet, "/reports/monthly?period=1year", nil)
	err := h.Monthly(echo.New().NewContext(req, httptest.NewRecorder()))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
