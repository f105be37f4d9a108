package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyemin916/drip-drop-dev/config"
	"github.com/hyemin916/drip-drop-dev/errs"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAuthorize(t *testing.T) {
	gate := NewAccessGate(map[string]string{config.KeyAdminSecret: testSecret})

	if err := gate.Authorize(testSecret); err != nil {
		t.Errorf("correct token rejected: %v", err)
	}
	if err := gate.Authorize("wrong-token"); !errs.IsUnauthorized(err) {
		t.Errorf("wrong token: error = %v, want unauthorized", err)
	}
	if err := gate.Authorize(""); !errs.IsUnauthorized(err) {
		t.Errorf("empty token: error = %v, want unauthorized", err)
	}
}

func TestAuthorizeUnconfiguredSecret(t *testing.T) {
	for _, secret := range []string{"", "too-short"} {
		gate := NewAccessGate(map[string]string{config.KeyAdminSecret: secret})
		err := gate.Authorize("anything")
		if !errs.IsConfiguration(err) {
			t.Errorf("secret %q: error = %v, want configuration error", secret, err)
		}
	}
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := TokenFromRequest(r); got != "" {
		t.Errorf("bare request: token = %q, want empty", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	if got := TokenFromRequest(r); got != "header-token" {
		t.Errorf("header token = %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie-token"})
	if got := TokenFromRequest(r); got != "cookie-token" {
		t.Errorf("cookie token = %q", got)
	}

	// Header wins over cookie
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	r.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie-token"})
	if got := TokenFromRequest(r); got != "header-token" {
		t.Errorf("header should take precedence, got %q", got)
	}

	// Non-bearer schemes are ignored
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if got := TokenFromRequest(r); got != "" {
		t.Errorf("basic auth: token = %q, want empty", got)
	}
}
