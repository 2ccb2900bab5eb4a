package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtutil "repairdesk/app/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate() (*Auth, *jwtutil.Signer) {
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "repairdesk", ExpMin: 60}
	return &Auth{Signer: signer}, signer
}

func TestRequireAuthMissingHeader(t *testing.T) {
	gate, _ := newGate()
	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/devices", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token required"}`, rec.Body.String())
}

func TestRequireAuthMalformedToken(t *testing.T) {
	gate, _ := newGate()
	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
}

func TestRequireAuthExpiredToken(t *testing.T) {
	gate, _ := newGate()
	expired := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "repairdesk", ExpMin: -5}
	token, err := expired.Sign(1, "user")
	require.NoError(t, err)

	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAuthPassesClaimsDownstream(t *testing.T) {
	gate, signer := newGate()
	token, err := signer.Sign(7, "admin")
	require.NoError(t, err)

	var got *jwtutil.Claims
	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "admin", got.Role)
}

type stubRevoker struct{ revoked map[string]bool }

func (s *stubRevoker) IsRevoked(_ context.Context, token string) bool { return s.revoked[token] }

func TestRequireAuthRevokedToken(t *testing.T) {
	gate, signer := newGate()
	token, err := signer.Sign(3, "user")
	require.NoError(t, err)
	gate.Revoked = &stubRevoker{revoked: map[string]bool{token: true}}

	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
}

func TestRequireAuthUnrevokedTokenPasses(t *testing.T) {
	gate, signer := newGate()
	gate.Revoked = &stubRevoker{revoked: map[string]bool{}}
	token, err := signer.Sign(3, "user")
	require.NoError(t, err)

	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetClaimsWithoutGate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetClaims(req.Context()))
}
