package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/services"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      *services.AccessGate
}

func newAuthHandler(gate *services.AccessGate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
	}
}

// checkAuth reports whether the caller holds the admin secret
// @Summary Check authentication
// @Description Verifies the admin token from the Authorization header or cookie without granting anything
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthCheckResponse "Token is valid"
// @Failure 401 {object} AuthCheckResponse "Token is missing or invalid"
// @Router /auth/check [get]
func (h authHandler) checkAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := services.TokenFromRequest(r)
		if err := h.gate.Authorize(token); err != nil {
			if errs.IsConfiguration(err) {
				h.responder.WriteError(w, err)
				return
			}

			h.responder.WriteJSONStatus(w, http.StatusUnauthorized, AuthCheckResponse{Authenticated: false})
			return
		}

		h.responder.WriteJSON(w, AuthCheckResponse{Authenticated: true})
	}
}
