package auth

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
)

type mockDirectory map[string]string

func (m mockDirectory) DisplayName(email string) (string, bool) {
	name, ok := m[email]
	return name, ok
}

func newLoginHandler(delay time.Duration) *Handler {
	return NewHandler(
		NewIssuer(testSigningKey, time.Hour),
		NewRevocationList(),
		mockDirectory{"amit.sharma@company.com": "Amit Sharma"},
		delay,
		zerolog.Nop(),
	)
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_AdminSuccess(t *testing.T) {
	h := newLoginHandler(0)
	c, rec := postJSON(`{"email":"Amit.Sharma@company.com","password":"secret1"}`)

	if err := h.LoginAdmin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp LoginResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Portal != PortalAdmin {
		t.Errorf("expected admin portal, got %s", resp.Portal)
	}
	if resp.Name != "Amit Sharma" {
		t.Errorf("expected directory name, got %q", resp.Name)
	}

	s, err := h.issuer.Parse(resp.Token)
	if err != nil {
		t.Fatalf("token did not parse: %v", err)
	}
	if s.Subject != "amit.sharma@company.com" || !s.HasRole("admin") {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestLogin_DoctorPortal(t *testing.T) {
	h := newLoginHandler(0)
	c, rec := postJSON(`{"email":"rajesh@clinic.com","password":"secret1"}`)

	if err := h.LoginDoctor(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp LoginResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Portal != PortalDoctor {
		t.Errorf("expected doctor portal, got %s", resp.Portal)
	}
	if resp.Name != "rajesh" {
		t.Errorf("expected name from email local part, got %q", resp.Name)
	}
}

func TestLogin_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"secret1"}`},
		{"bad email", `{"email":"nope","password":"secret1"}`},
		{"short password", `{"email":"a@b.com","password":"123"}`},
		{"empty", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := postJSON(tt.body)
			err := newLoginHandler(0).LoginAdmin(c)
			assertStatus(t, err, http.StatusBadRequest)
		})
	}
}

func TestLogin_DelayCancelled(t *testing.T) {
	h := newLoginHandler(time.Hour)
	c, _ := postJSON(`{"email":"a@b.com","password":"secret1"}`)
	ctx, cancel := context.WithCancel(c.Request().Context())
	cancel()
	c.SetRequest(c.Request().WithContext(ctx))

	err := h.LoginAdmin(c)
	assertStatus(t, err, http.StatusServiceUnavailable)
}

func TestLogout_RevokesAndNotifies(t *testing.T) {
	h := newLoginHandler(0)
	var forgotten string
	h.OnLogout(func(subject string) { forgotten = subject })

	_, s, _ := h.issuer.Issue(Session{Subject: "a@b.com", Portal: PortalAdmin})
	c, rec := postJSON(``)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), s)))

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if !h.revoked.IsRevoked(s.ID) {
		t.Error("expected session to be revoked")
	}
	if forgotten != "a@b.com" {
		t.Errorf("expected logout hook to see subject, got %q", forgotten)
	}
}

func TestSessionEndpoint(t *testing.T) {
	h := newLoginHandler(0)

	c, rec := postJSON(``)
	if err := h.Session(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp SessionResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.State != StateAnonymous || resp.Session != nil {
		t.Errorf("expected anonymous, got %+v", resp)
	}

	c, rec = postJSON(``)
	s := Session{Subject: "a@b.com", Portal: PortalAdmin, ExpiresAt: time.Now().Add(-time.Minute)}
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), s)))
	h.Session(c)
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.State != StateExpired {
		t.Errorf("expected expired, got %s", resp.State)
	}
}
