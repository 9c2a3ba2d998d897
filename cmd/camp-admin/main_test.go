package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/config"
	"github.com/healthcamp/dashboard/internal/platform/auth"
	"github.com/healthcamp/dashboard/internal/platform/middleware"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Port:              "0",
		Env:               env,
		LogLevel:          "info",
		CORSOrigins:       []string{"http://localhost:5173"},
		SessionSigningKey: "test-signing-key-of-at-least-32-bytes",
		SessionTTL:        time.Hour,
		LoginRateRPS:      100,
		LoginRateBurst:    100,
		ConfirmTTL:        time.Minute,
		DefaultPageSize:   10,
		MaxPageSize:       100,
		BodyLimit:         "1M",
		MetricsEnabled:    true,
	}
}

func newTestServer(env string) (*echo.Echo, *app) {
	a := newApp(zerolog.Nop(), middleware.NewMetrics(), time.Minute)
	return newServer(testConfig(env), zerolog.Nop(), a), a
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, path string) string {
	t.Helper()
	rec := do(e, http.MethodPost, path, "", `{"email":"doctor@camp.in","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp auth.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestServer("production")
	rec := do(e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestServer_Metrics(t *testing.T) {
	e, _ := newTestServer("production")
	do(e, http.MethodGet, "/health", "", "")
	rec := do(e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, series := range []string{"campadmin_confirm_pending_prompts 0", "campadmin_auth_revoked_sessions 0"} {
		if !strings.Contains(rec.Body.String(), series) {
			t.Errorf("expected %q in exposition", series)
		}
	}
}

func TestServer_AdminRoutesRequireSession(t *testing.T) {
	e, _ := newTestServer("production")
	if rec := do(e, http.MethodGet, "/api/v1/doctors", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a session, got %d", rec.Code)
	}
}

func TestServer_PortalsAreSeparate(t *testing.T) {
	e, _ := newTestServer("production")
	token := login(t, e, "/api/v1/auth/doctor/login")

	if rec := do(e, http.MethodGet, "/api/v1/doctor/patients", token, ""); rec.Code != http.StatusOK {
		t.Errorf("expected doctor portal 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/v1/doctors", token, ""); rec.Code != http.StatusForbidden {
		t.Errorf("expected admin route 403 for a doctor session, got %d", rec.Code)
	}
}

func TestServer_AdminLogin(t *testing.T) {
	e, _ := newTestServer("production")
	token := login(t, e, "/api/v1/auth/login")

	for _, path := range []string{
		"/api/v1/doctors",
		"/api/v1/camps",
		"/api/v1/users",
		"/api/v1/health-records",
		"/api/v1/schemes",
		"/api/v1/families",
		"/api/v1/activities",
		"/api/v1/reports/dashboard",
	} {
		if rec := do(e, http.MethodGet, path, token, ""); rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestServer_ConfirmationsStayWithTheirSession(t *testing.T) {
	e, a := newTestServer("production")
	admin := login(t, e, "/api/v1/auth/login")
	doctorSession := login(t, e, "/api/v1/auth/doctor/login")

	rec := do(e, http.MethodDelete, "/api/v1/doctors/2", admin, "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	var prompt struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &prompt); err != nil {
		t.Fatalf("decode prompt: %v", err)
	}

	target := "/api/v1/confirmations/" + prompt.Token
	if rec := do(e, http.MethodPost, target, doctorSession, `{"decision":"confirm"}`); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a doctor session, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, target, "", `{"decision":"confirm"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a session, got %d", rec.Code)
	}
	if a.prompts.Pending() != 1 {
		t.Fatalf("expected the prompt to stay pending, got %d", a.prompts.Pending())
	}
	if rec := do(e, http.MethodPost, target, admin, `{"decision":"confirm"}`); rec.Code != http.StatusOK {
		t.Errorf("expected 200 for the requesting session, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, ok := a.doctors.Get("2"); ok {
		t.Error("expected doctor 2 to be deleted")
	}
}

func TestServer_DevSessionAndReset(t *testing.T) {
	e, a := newTestServer("development")

	rec := do(e, http.MethodPost, "/api/v1/families/F001/members", "", `{"name":"Test Member"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := a.families.Statistics().TotalMembers; got != 16 {
		t.Fatalf("expected 16 members, got %d", got)
	}

	if rec := do(e, http.MethodPost, "/api/v1/dev/reset", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from reset, got %d", rec.Code)
	}
	if got := a.families.Statistics().TotalMembers; got != 15 {
		t.Errorf("expected seed restored with 15 members, got %d", got)
	}
}

func TestServer_ResetOnlyInDevelopment(t *testing.T) {
	e, _ := newTestServer("production")
	token := login(t, e, "/api/v1/auth/login")
	if rec := do(e, http.MethodPost, "/api/v1/dev/reset", token, ""); rec.Code == http.StatusOK {
		t.Error("expected reset to be unavailable outside development")
	}
}

func TestApp_Source(t *testing.T) {
	a := newApp(zerolog.Nop(), nil, time.Minute)
	for name := range a.sources() {
		src, err := a.source(name)
		if err != nil {
			t.Fatalf("source %s: %v", name, err)
		}
		if src.Title == "" || len(src.Records()) == 0 {
			t.Errorf("source %s: expected a title and seeded records", name)
		}
	}
	if _, err := a.source("nurses"); err == nil {
		t.Error("expected an error for an unknown entity")
	}
}

func TestParseReportType(t *testing.T) {
	if _, err := parseReportType("monthly"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := parseReportType("weekly"); err == nil {
		t.Error("expected an error for an unknown report type")
	}
}

func TestSeedCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, name := range []string{"doctors", "families", "schemes"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("expected %s in output:\n%s", name, out.String())
		}
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monthly.csv")

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"export", "--type", "monthly", "--out", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "Month,Camps,Beneficiaries,Schemes") {
		t.Errorf("unexpected csv header:\n%s", data)
	}
}

func TestExportCommand_UnknownType(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"export", "--type", "weekly", "--out", "-"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unknown report type")
	}
}
