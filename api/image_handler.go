package api

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/services"
)

type imageHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    *services.ImageService
}

func newImageHandler(images *services.ImageService) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
	}
}

// uploadImage ingests an image file
// @Summary Upload image
// @Description Validates, normalizes and persists an uploaded image, returning its public URL and metadata
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpeg, png, gif or webp, at most 5 MB)"
// @Param alt formData string true "Alt text"
// @Param caption formData string false "Caption"
// @Success 201 {object} models.Image "Stored image metadata"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing file or alt text, or undecodable image"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid admin token"
// @Failure 413 {object} ErrorResponse "Payload Too Large - File exceeds the size limit"
// @Router /images/upload [post]
func (h imageHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// One megabyte of form parts on top of the file itself.
		if err := r.ParseMultipartForm(services.MaxUploadSize + 1<<20); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		// Reject oversized files before buffering them.
		if header.Size > services.MaxUploadSize {
			h.responder.WriteError(w, errs.NewPayloadTooLargeError(header.Size, services.MaxUploadSize))
			return
		}

		alt := r.FormValue("alt")
		if alt == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("alt"))
			return
		}

		var caption *string
		if value := r.FormValue("caption"); value != "" {
			caption = &value
		}

		data, err := io.ReadAll(file)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read uploaded file")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
			return
		}

		image, err := h.images.Upload(r.Context(), services.UploadInput{
			Data:         data,
			OriginalName: header.Filename,
			MimeType:     header.Header.Get("Content-Type"),
			Alt:          alt,
			Caption:      caption,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, image)
	}
}
