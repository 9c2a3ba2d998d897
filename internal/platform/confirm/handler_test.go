package confirm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/platform/auth"
)

func resolveRequestContext(token, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues(token)
	return c, rec
}

func TestHandler_ResolveConfirm(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	deleted := false
	p := reg.Request(context.Background(), Prompt{Title: "Delete Doctor"}, func(context.Context) error {
		deleted = true
		return nil
	})
	h := NewHandler(reg)

	c, rec := resolveRequestContext(p.Token, `{"decision":"confirm"}`)
	if err := h.Resolve(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp resolveResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Outcome != OutcomeConfirmed {
		t.Errorf("expected confirmed, got %s", resp.Outcome)
	}
	if !deleted {
		t.Error("expected action to run")
	}
}

func TestHandler_ResolveUnknownToken(t *testing.T) {
	h := NewHandler(NewRegistry(time.Minute, zerolog.Nop()))

	c, _ := resolveRequestContext("missing", `{"decision":"confirm"}`)
	err := h.Resolve(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusGone {
		t.Errorf("expected 410, got %d", httpErr.Code)
	}
}

func TestHandler_ResolveInvalidDecision(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	p := reg.Request(context.Background(), Prompt{Title: "Delete"}, nil)
	h := NewHandler(reg)

	c, _ := resolveRequestContext(p.Token, `{"decision":"maybe"}`)
	err := h.Resolve(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
	if reg.Pending() != 1 {
		t.Error("expected an invalid decision to leave the prompt pending")
	}
}

func TestHandler_Get(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	p := reg.Request(context.Background(), Prompt{Title: "Reject Scheme", Severity: SeverityDanger}, nil)
	h := NewHandler(reg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues(p.Token)

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Prompt
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Title != "Reject Scheme" || got.Severity != SeverityDanger {
		t.Errorf("unexpected prompt %+v", got)
	}
}

func TestHandler_ResolveOtherSession(t *testing.T) {
	reg := NewRegistry(time.Minute, zerolog.Nop())
	owner := auth.WithSession(context.Background(), auth.Session{Subject: "admin@company.com", Portal: auth.PortalAdmin})
	p := reg.Request(owner, Prompt{Title: "Delete User"}, nil)
	h := NewHandler(reg)

	c, _ := resolveRequestContext(p.Token, `{"decision":"confirm"}`)
	other := auth.WithSession(c.Request().Context(), auth.Session{Subject: "doctor@camp.in", Portal: auth.PortalDoctor})
	c.SetRequest(c.Request().WithContext(other))

	err := h.Resolve(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.Code)
	}
	if reg.Pending() != 1 {
		t.Error("expected the prompt to stay pending")
	}
}
