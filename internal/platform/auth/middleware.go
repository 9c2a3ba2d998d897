package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// SessionMiddleware resolves the bearer token, if any, into a Session on the
// request context. It never rejects a request: a missing, malformed or
// revoked token yields an anonymous session and the guards decide.
func SessionMiddleware(issuer *Issuer, revoked *RevocationList, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			var s Session
			tok, ok := bearerToken(header)
			if ok {
				parsed, err := issuer.Parse(tok)
				switch {
				case err != nil:
					logger.Debug().Err(err).Msg("ignoring invalid session token")
				case revoked != nil && revoked.IsRevoked(parsed.ID):
					logger.Debug().Str("session_id", parsed.ID).Msg("ignoring revoked session token")
				default:
					s = parsed
				}
			}

			ctx := WithSession(c.Request().Context(), s)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// DevSession is granted to unauthenticated requests in development.
func DevSession() Session {
	return Session{
		Subject:   "dev-admin",
		Email:     "admin@company.com",
		Name:      "Dev Admin",
		Portal:    PortalAdmin,
		Roles:     []string{"admin"},
		ExpiresAt: time.Now().Add(24 * time.Hour),
		Dev:       true,
	}
}

// DevSessionMiddleware is a permissive middleware for development that
// grants DevSession to requests that carry no Authorization header. It must
// run after SessionMiddleware.
func DevSessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				ctx := WithSession(c.Request().Context(), DevSession())
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// RequirePortal guards a route tree. Anonymous and expired sessions are
// refused with 401, sessions of another portal with 403.
func RequirePortal(portal Portal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFromContext(c.Request().Context())
			switch s.State(time.Now()) {
			case StateAnonymous:
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			case StateExpired:
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			if s.Portal != portal && !s.Dev {
				return echo.NewHTTPError(http.StatusForbidden, "session does not grant access to the "+string(portal)+" portal")
			}
			return next(c)
		}
	}
}
