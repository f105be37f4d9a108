package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyemin916/drip-drop-dev/database"
	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	about     database.AboutStore
	owner     models.BlogOwner
}

func newAboutHandler(about database.AboutStore, owner models.BlogOwner) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		about:     about,
		owner:     owner,
	}
}

// getAbout retrieves the about page content
// @Summary Get about page
// @Description Retrieves the single about page with contact and social links
// @Tags About
// @Produce json
// @Success 200 {object} models.AboutMe "About page content"
// @Failure 404 {object} ErrorResponse "Not Found - About page has never been written"
// @Router /about [get]
func (h aboutHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.about.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, about)
	}
}

// updateAbout replaces the about page content
// @Summary Update about page
// @Description Replaces the about page content and social links; creates the page on first write
// @Tags About
// @Accept json
// @Produce json
// @Param about body models.AboutMeUpdate true "About page data"
// @Success 200 {object} models.AboutMe "Updated about page"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid about data"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid admin token"
// @Router /about [put]
func (h aboutHandler) updateAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data models.AboutMeUpdate
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode about update request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("about", err))
			return
		}

		if err := data.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		about, err := h.about.Update(r.Context(), data, h.owner.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, about)
	}
}
