package api

import (
	"github.com/hyemin916/drip-drop-dev/models"
	"github.com/hyemin916/drip-drop-dev/services"
)

type routeHandlers struct {
	postHandler  postHandler
	aboutHandler aboutHandler
	imageHandler imageHandler
	authHandler  authHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(stores Stores, images *services.ImageService, gate *services.AccessGate, owner models.BlogOwner) *routeHandlers {
	return &routeHandlers{
		postHandler:  newPostHandler(stores.Posts()),
		aboutHandler: newAboutHandler(stores.About(), owner),
		imageHandler: newImageHandler(images),
		authHandler:  newAuthHandler(gate),
	}
}
