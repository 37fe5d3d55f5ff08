package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Validation("Name is required"), http.StatusBadRequest, "Name is required"},
		{"unauthorized", apperr.Unauthorized("Invalid username or password"), http.StatusUnauthorized, "Invalid username or password"},
		{"forbidden", apperr.Forbidden("Insufficient permissions"), http.StatusForbidden, "Insufficient permissions"},
		{"not found", apperr.NotFound("manpower", "m-1"), http.StatusNotFound, "manpower m-1 not found"},
		{"conflict", apperr.Conflict("Username already exists"), http.StatusConflict, "Username already exists"},
		{"internal hides detail", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			rec := httptest.NewRecorder()
			writeError(rec, zerolog.Nop(), tt.err)

			c.Assert(rec.Code, qt.Equals, tt.wantStatus)

			var resp response
			c.Assert(json.Unmarshal(rec.Body.Bytes(), &resp), qt.IsNil)
			c.Assert(resp.Success, qt.IsFalse)
			c.Assert(resp.Message, qt.Equals, tt.wantMsg)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	c := qt.New(t)

	wrapped := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Error("preflight should not reach the inner handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/manpower", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "http://localhost:5173")
	c.Assert(rec.Header().Get("Access-Control-Allow-Headers"), qt.Contains, "Authorization")
}
