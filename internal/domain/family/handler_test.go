package family

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/auth"
	"github.com/healthcamp/dashboard/internal/platform/browse"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc, browse.NewExpansionRegistry(), browse.DefaultLimits), echo.New()
}

func withSubject(req *http.Request, subject string) *http.Request {
	return req.WithContext(auth.WithSession(context.Background(), auth.Session{Subject: subject}))
}

func list(t *testing.T, h *Handler, e *echo.Echo, target, subject string) browse.Result {
	t.Helper()
	rec := httptest.NewRecorder()
	req := withSubject(httptest.NewRequest(http.MethodGet, target, nil), subject)
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res browse.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res
}

func TestHandler_List_NeedsAttention(t *testing.T) {
	h, e := newTestHandler()
	res := list(t, h, e, "/families?status=needs-attention", "admin")
	if res.Total != 3 {
		t.Errorf("expected 3 families, got %d", res.Total)
	}
}

func TestHandler_List_SearchWithinTab(t *testing.T) {
	h, e := newTestHandler()
	res := list(t, h, e, "/families?status=needs-attention&q="+url.QueryEscape("रायपुर"), "admin")
	if res.Total != 1 || res.Rows[0].ID != "F002" {
		t.Errorf("expected only F002, got %+v", res.Rows)
	}
}

func TestHandler_List_InvalidStatus(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/families?status=sick", nil)
	err := h.List(e.NewContext(req, httptest.NewRecorder()))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_ExpandShowsMembers(t *testing.T) {
	h, e := newTestHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(withSubject(httptest.NewRequest(http.MethodPost, "/", nil), "admin"), rec)
	c.SetParamNames("id")
	c.SetParamValues("F001")
	if err := h.ToggleExpand(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := list(t, h, e, "/families", "admin")
	for _, row := range res.Rows {
		switch row.ID {
		case "F001":
			cards, _ := row.Detail.([]any)
			if !row.Expanded || len(cards) != 4 {
				t.Errorf("expected 4 member cards for F001, got %+v", row.Detail)
			}
		default:
			if row.Expanded || row.Detail != nil {
				t.Errorf("expected %s collapsed", row.ID)
			}
		}
	}

	other := list(t, h, e, "/families", "someone-else")
	for _, row := range other.Rows {
		if row.Expanded {
			t.Errorf("expected expansion to be per session, %s expanded", row.ID)
		}
	}
}

func TestHandler_ToggleExpand_UnknownFamily(t *testing.T) {
	h, e := newTestHandler()
	c := e.NewContext(withSubject(httptest.NewRequest(http.MethodPost, "/", nil), "admin"), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("F999")

	err := h.ToggleExpand(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if open := h.expansions.For("admin", h.view.Name).Expanded(); len(open) != 0 {
		t.Errorf("expected no expansion state for an unknown id, got %v", open)
	}
}

func TestHandler_ToggleExpand_ReportsOpenRows(t *testing.T) {
	h, e := newTestHandler()
	for _, id := range []string{"F003", "F001"} {
		rec := httptest.NewRecorder()
		c := e.NewContext(withSubject(httptest.NewRequest(http.MethodPost, "/", nil), "admin"), rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.ToggleExpand(c); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
		if id != "F001" {
			continue
		}
		var resp struct {
			Expanded    bool     `json:"expanded"`
			ExpandedIDs []string `json:"expandedIds"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Expanded || len(resp.ExpandedIDs) != 2 || resp.ExpandedIDs[0] != "F001" || resp.ExpandedIDs[1] != "F003" {
			t.Errorf("unexpected toggle response %+v", resp)
		}
	}
}

func TestHandler_AddMember(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"नई सदस्य","relation":"parent","age":"70","gender":"female","allergies":"धूल, पराग"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("F004")

	if err := h.AddMember(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var m Member
	json.Unmarshal(rec.Body.Bytes(), &m)
	if m.Age != 70 || m.Relation != RelationParent || len(m.Allergies) != 2 {
		t.Errorf("unexpected member %+v", m)
	}
}

func TestHandler_AddMember_InvalidRelation(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"X","relation":"cousin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("F004")

	err := h.AddMember(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
