package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 8 * time.Hour

// Claims is the JWT payload carrying a session.
type Claims struct {
	jwt.RegisteredClaims
	Email  string   `json:"email"`
	Name   string   `json:"name,omitempty"`
	Portal Portal   `json:"portal"`
	Roles  []string `json:"roles"`
}

// Issuer signs and parses HS256 session tokens.
type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(key []byte, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Issuer{key: key, ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued sessions.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue stamps s with an id, issue time and expiry, and signs it.
func (i *Issuer) Issue(s Session) (string, Session, error) {
	if s.Subject == "" {
		return "", Session{}, errors.New("issuing session: subject is required")
	}
	portal, err := ParsePortal(string(s.Portal))
	if err != nil {
		return "", Session{}, fmt.Errorf("issuing session: %w", err)
	}
	s.Portal = portal
	now := i.now().Truncate(time.Second)
	s.ID = uuid.New().String()
	s.IssuedAt = now
	s.ExpiresAt = now.Add(i.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   s.Subject,
			IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
		Email:  s.Email,
		Name:   s.Name,
		Portal: s.Portal,
		Roles:  s.Roles,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", Session{}, fmt.Errorf("signing session token: %w", err)
	}
	return token, s, nil
}

// Parse verifies the signature of token and returns its session. Expiry is
// deliberately not enforced here: an expired session is still a session, and
// the guards report it as such.
func (i *Issuer) Parse(token string) (Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return Session{}, fmt.Errorf("parsing session token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return Session{}, errors.New("parsing session token: invalid token")
	}
	portal, err := ParsePortal(string(claims.Portal))
	if err != nil {
		return Session{}, fmt.Errorf("parsing session token: %w", err)
	}

	s := Session{
		ID:      claims.ID,
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Portal:  portal,
		Roles:   claims.Roles,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
