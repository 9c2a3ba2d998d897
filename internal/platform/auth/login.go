package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthcamp/dashboard/internal/platform/form"
)

// Directory resolves a login email to the display name of a known person.
type Directory interface {
	DisplayName(email string) (string, bool)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Portal    Portal    `json:"portal"`
	Name      string    `json:"name"`
}

type SessionResponse struct {
	State   State    `json:"state"`
	Session *Session `json:"session,omitempty"`
}

// Handler serves the login, logout and session endpoints of both portals.
// Credentials are only checked for shape: any well-formed email with a
// password of at least six characters is accepted.
type Handler struct {
	issuer    *Issuer
	revoked   *RevocationList
	directory Directory
	delay     time.Duration
	logger    zerolog.Logger
	onLogout  []func(subject string)
}

func NewHandler(issuer *Issuer, revoked *RevocationList, directory Directory, delay time.Duration, logger zerolog.Logger) *Handler {
	return &Handler{
		issuer:    issuer,
		revoked:   revoked,
		directory: directory,
		delay:     delay,
		logger:    logger.With().Str("component", "auth").Logger(),
	}
}

// OnLogout registers fn to run with the subject of every ended session.
func (h *Handler) OnLogout(fn func(subject string)) {
	h.onLogout = append(h.onLogout, fn)
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.LoginAdmin)
	api.POST("/auth/doctor/login", h.LoginDoctor)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/session", h.Session)
}

func (h *Handler) LoginAdmin(c echo.Context) error {
	return h.login(c, PortalAdmin)
}

func (h *Handler) LoginDoctor(c echo.Context) error {
	return h.login(c, PortalDoctor)
}

func (h *Handler) login(c echo.Context, portal Portal) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := form.Validate(req); err != nil {
		return form.HTTPError(err)
	}

	if err := wait(c.Request().Context(), h.delay); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "login cancelled")
	}

	s := Session{
		Subject: req.Email,
		Email:   req.Email,
		Name:    h.displayName(req.Email),
		Portal:  portal,
		Roles:   []string{string(portal)},
	}
	token, s, err := h.issuer.Issue(s)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.logger.Info().
		Str("subject", s.Subject).
		Str("portal", string(portal)).
		Time("expires_at", s.ExpiresAt).
		Msg("session started")

	return c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: s.ExpiresAt,
		Portal:    portal,
		Name:      s.Name,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	s := SessionFromContext(c.Request().Context())
	if s.Subject == "" || s.Dev {
		return c.NoContent(http.StatusNoContent)
	}
	h.revoked.Revoke(s.ID, s.ExpiresAt)
	for _, fn := range h.onLogout {
		fn(s.Subject)
	}
	h.logger.Info().Str("subject", s.Subject).Str("portal", string(s.Portal)).Msg("session ended")
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Session(c echo.Context) error {
	s := SessionFromContext(c.Request().Context())
	resp := SessionResponse{State: s.State(time.Now())}
	if resp.State != StateAnonymous {
		resp.Session = &s
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) displayName(email string) string {
	if h.directory != nil {
		if name, ok := h.directory.DisplayName(email); ok {
			return name
		}
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
