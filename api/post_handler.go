package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyemin916/drip-drop-dev/database"
	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     database.PostStore
}

func newPostHandler(posts database.PostStore) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// listPosts retrieves published posts, newest first
// @Summary List posts
// @Description Retrieves a page of post summaries ordered by publication date descending, optionally filtered by category
// @Tags Posts
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size, capped at 100"
// @Param category query string false "Category filter (Daily, Dev, 일상, 개발)"
// @Success 200 {object} PostListResponse "Page of post summaries"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid category or paging parameters"
// @Router /posts [get]
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := database.ListOptions{
			Page:  defaultPage,
			Limit: defaultLimit,
		}

		if raw := r.URL.Query().Get("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil || page < 1 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("page", "must be a positive integer"))
				return
			}
			opts.Page = page
		}

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("limit", "must be a positive integer"))
				return
			}
			if limit > maxLimit {
				limit = maxLimit
			}
			opts.Limit = limit
		}

		if raw := r.URL.Query().Get("category"); raw != "" {
			category, ok := models.NormalizeCategory(raw)
			if !ok {
				h.responder.WriteError(w, errs.NewInvalidCategoryError(raw))
				return
			}
			opts.Category = &category
		}

		summaries, total, err := h.posts.List(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		totalPages := int(total) / opts.Limit
		if int(total)%opts.Limit != 0 {
			totalPages++
		}

		h.responder.WriteJSON(w, PostListResponse{
			Posts: summaries,
			Pagination: Pagination{
				Page:       opts.Page,
				Limit:      opts.Limit,
				Total:      total,
				TotalPages: totalPages,
			},
		})
	}
}

// getPost retrieves a single post by slug
// @Summary Get post
// @Description Retrieves a full post, including extracted inline images, by its slug
// @Tags Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post "Post details"
// @Failure 404 {object} ErrorResponse "Not Found - No post with this slug"
// @Router /posts/{slug} [get]
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.posts.GetBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createPost creates a new post
// @Summary Create post
// @Description Creates a new post; the slug must be unique across all posts
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body models.PostCreate true "Post data"
// @Success 201 {object} models.Post "Created post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid post data"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid admin token"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Router /posts [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data models.PostCreate
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post create request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("post", err))
			return
		}

		// Accept either spelling of the category, store the canonical one.
		if category, ok := models.NormalizeCategory(string(data.Category)); ok {
			data.Category = category
		}

		if err := data.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.Create(r.Context(), data)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, post)
	}
}

// updatePost updates an existing post
// @Summary Update post
// @Description Applies a partial update to the post with the given slug; renaming to an occupied slug is rejected
// @Tags Posts
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param post body models.PostUpdate true "Fields to update"
// @Success 200 {object} models.Post "Updated post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid post data"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Not Found - No post with this slug"
// @Failure 409 {object} ErrorResponse "Conflict - Target slug already in use"
// @Router /posts/{slug} [put]
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		var data models.PostUpdate
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post update request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("post", err))
			return
		}

		if data.Category != nil {
			if category, ok := models.NormalizeCategory(string(*data.Category)); ok {
				data.Category = &category
			}
		}

		if err := data.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.Update(r.Context(), slug, data)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deletePost deletes a post by slug
// @Summary Delete post
// @Description Deletes the post with the given slug
// @Tags Posts
// @Param slug path string true "Post slug"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Not Found - No post with this slug"
// @Router /posts/{slug} [delete]
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		if err := h.posts.Delete(r.Context(), slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
