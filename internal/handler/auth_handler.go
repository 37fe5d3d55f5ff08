package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/service"
)

// AuthHandler serves login and current-principal lookups.
type AuthHandler struct {
	service *service.AuthService
	log     zerolog.Logger
}

func NewAuthHandler(service *service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeData(w, http.StatusOK, loginView{
		Token: token,
		User:  userView{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}

// Me handles GET /api/users/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthorized("Missing or invalid authorization header"))
		return
	}

	user, err := h.service.Me(r.Context(), principal)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeData(w, http.StatusOK, userView{ID: user.ID, Username: user.Username, Role: user.Role})
}
