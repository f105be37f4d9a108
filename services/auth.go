package services

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/hyemin916/drip-drop-dev/config"
	"github.com/hyemin916/drip-drop-dev/errs"
)

// MinSecretLength is the minimum admin secret length accepted at runtime.
const MinSecretLength = 32

const authCookieName = "admin_auth"

// AccessGate authorizes mutating operations by comparing a presented token
// against the configured admin secret.
type AccessGate struct {
	secret string
}

func NewAccessGate(c map[string]string) *AccessGate {
	return &AccessGate{secret: config.GetString(c, config.KeyAdminSecret, "")}
}

// Authorize returns nil when token matches the configured secret. A missing
// or too-short secret is a configuration error, distinguishing "misconfigured
// server" from "caller unauthorized".
func (g *AccessGate) Authorize(token string) error {
	if len(g.secret) < MinSecretLength {
		return errs.NewConfigurationError("ADMIN_SECRET not configured or shorter than 32 characters")
	}
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(g.secret)) != 1 {
		return errs.NewUnauthorizedError("invalid or missing admin token")
	}
	return nil
}

// TokenFromRequest extracts the admin token from the Authorization header
// (Bearer scheme) or, failing that, the admin_auth cookie.
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie(authCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
