package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the admin-gated write surface
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/posts", handlers.postHandler.listPosts())
		r.Get("/posts/{slug}", handlers.postHandler.getPost())
		r.Get("/about", handlers.aboutHandler.getAbout())
		r.Get("/auth/check", handlers.authHandler.checkAuth())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/posts", handlers.postHandler.createPost())
		r.Put("/posts/{slug}", handlers.postHandler.updatePost())
		r.Delete("/posts/{slug}", handlers.postHandler.deletePost())
		r.Put("/about", handlers.aboutHandler.updateAbout())
		r.Post("/images/upload", handlers.imageHandler.uploadImage())
	})
}
