package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/auth"
)

// NewRouter wires every endpoint behind the auth gateway and role gates.
func NewRouter(
	gateway *auth.Gateway,
	authHandler *AuthHandler,
	manpowerHandler *ManpowerHandler,
	equipmentHandler *EquipmentHandler,
	subcontractorHandler *SubcontractorHandler,
	dashboardHandler *DashboardHandler,
	log zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	logged := func(h http.HandlerFunc) http.HandlerFunc {
		return WithLogging(log, h)
	}
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return logged(gateway.Authenticate(h))
	}
	adminOnly := gateway.RequireRole(auth.RoleAdmin)
	subOnly := gateway.RequireRole(auth.RoleSubcontractor)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "time": time.Now()})
	})

	mux.HandleFunc("POST /api/auth/login", logged(authHandler.Login))
	mux.HandleFunc("GET /api/users/me", authed(authHandler.Me))

	mux.HandleFunc("GET /api/manpower", authed(manpowerHandler.List))
	mux.HandleFunc("POST /api/manpower", authed(subOnly(manpowerHandler.Create)))
	mux.HandleFunc("PUT /api/manpower/{id}/approve", authed(adminOnly(manpowerHandler.Approve)))
	mux.HandleFunc("PUT /api/manpower/{id}/reject", authed(adminOnly(manpowerHandler.Reject)))
	mux.HandleFunc("PUT /api/manpower/{id}/attendance", authed(subOnly(manpowerHandler.Attendance)))

	mux.HandleFunc("GET /api/equipment", authed(equipmentHandler.List))
	mux.HandleFunc("POST /api/equipment", authed(subOnly(equipmentHandler.Create)))
	mux.HandleFunc("PUT /api/equipment/{id}/approve", authed(adminOnly(equipmentHandler.Approve)))
	mux.HandleFunc("PUT /api/equipment/{id}/reject", authed(adminOnly(equipmentHandler.Reject)))
	mux.HandleFunc("PUT /api/equipment/{id}/status", authed(subOnly(equipmentHandler.Status)))

	mux.HandleFunc("GET /api/subcontractors", authed(adminOnly(subcontractorHandler.List)))
	mux.HandleFunc("POST /api/subcontractors", authed(adminOnly(subcontractorHandler.Create)))
	mux.HandleFunc("PUT /api/subcontractors/{id}", authed(adminOnly(subcontractorHandler.Update)))
	mux.HandleFunc("DELETE /api/subcontractors/{id}", authed(adminOnly(subcontractorHandler.Delete)))
	mux.HandleFunc("GET /api/subcontractors/{id}/manpower", authed(adminOnly(manpowerHandler.List)))
	mux.HandleFunc("GET /api/subcontractors/{id}/equipment", authed(adminOnly(equipmentHandler.List)))

	mux.HandleFunc("GET /api/dashboard/metrics", authed(dashboardHandler.Metrics))

	return CORS(mux)
}
