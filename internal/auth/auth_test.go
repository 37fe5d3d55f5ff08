package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/pkg/jwt"
)

func newTestGateway(t *testing.T) (*Gateway, *jwt.Manager) {
	t.Helper()

	privateKeyPEM, publicKeyPEM, err := jwt.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	manager, err := jwt.NewManager(privateKeyPEM, publicKeyPEM, time.Hour)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	return NewGateway(manager, zerolog.Nop()), manager
}

func TestAuthenticate(t *testing.T) {
	c := qt.New(t)
	gateway, manager := newTestGateway(t)

	var got Principal
	next := func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}

	c.Run("valid token attaches principal", func(c *qt.C) {
		token, err := manager.GenerateToken("user-1", "acme", "subcontractor")
		c.Assert(err, qt.IsNil)

		req := httptest.NewRequest(http.MethodGet, "/api/manpower", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		gateway.Authenticate(next)(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusOK)
		c.Assert(got, qt.Equals, Principal{ID: "user-1", Username: "acme", Role: RoleSubcontractor})
	})

	c.Run("missing header is unauthorized", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodGet, "/api/manpower", nil)
		rec := httptest.NewRecorder()

		gateway.Authenticate(next)(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
	})

	c.Run("garbage token is unauthorized", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodGet, "/api/manpower", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		gateway.Authenticate(next)(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
	})
}

func TestRequireRole(t *testing.T) {
	c := qt.New(t)
	gateway, _ := newTestGateway(t)

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	adminOnly := gateway.RequireRole(RoleAdmin)(ok)

	c.Run("allowed role passes", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodGet, "/api/subcontractors", nil)
		req = req.WithContext(WithPrincipal(req.Context(), Principal{ID: "a-1", Role: RoleAdmin}))
		rec := httptest.NewRecorder()

		adminOnly(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusOK)
	})

	c.Run("disallowed role is forbidden", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodGet, "/api/subcontractors", nil)
		req = req.WithContext(WithPrincipal(req.Context(), Principal{ID: "u-1", Role: RoleSubcontractor}))
		rec := httptest.NewRecorder()

		adminOnly(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusForbidden)
	})

	c.Run("missing principal is unauthorized", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodGet, "/api/subcontractors", nil)
		rec := httptest.NewRecorder()

		adminOnly(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
	})
}
