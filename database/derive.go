package database

import (
	"fmt"
	"time"

	"github.com/hyemin916/drip-drop-dev/markdown"
	"github.com/hyemin916/drip-drop-dev/models"
)

// Placeholder dimensions for images reconstructed from Markdown syntax at
// read time; the intrinsic dimensions are not persisted with the post.
const (
	derivedImageWidth  = 800
	derivedImageHeight = 600
	derivedThumbWidth  = 400
	derivedThumbHeight = 300
)

// DeriveImages fills in the Images and effective Thumbnail fields of a post
// from its body: the explicit thumbnail reference wins, else the first image
// found in the body, else nil. Shared by both storage backends so their
// externally observable behavior stays identical.
func DeriveImages(p *models.Post, explicitThumbnail string) {
	refs := markdown.ExtractImages(p.Content)
	now := time.Now()

	images := make([]models.Image, 0, len(refs))
	for i, ref := range refs {
		alt := ref.Alt
		if alt == "" {
			alt = p.Title
		}
		images = append(images, models.Image{
			ID:         fmt.Sprintf("%s-img-%d", p.Slug, i),
			URL:        ref.URL,
			Alt:        alt,
			Caption:    ref.Caption,
			Width:      derivedImageWidth,
			Height:     derivedImageHeight,
			Format:     models.FormatWebp,
			FileSize:   0,
			UploadedAt: now,
		})
	}
	p.Images = images

	switch {
	case explicitThumbnail != "":
		p.Thumbnail = ThumbnailImage(p.Slug, p.Title, explicitThumbnail)
	case len(images) > 0:
		p.Thumbnail = &images[0]
	default:
		p.Thumbnail = nil
	}
}

// ThumbnailImage wraps an explicit thumbnail URL in the placeholder image
// shape used by list views.
func ThumbnailImage(slug, title, url string) *models.Image {
	return &models.Image{
		ID:         slug + "-thumb",
		URL:        url,
		Alt:        title,
		Caption:    nil,
		Width:      derivedThumbWidth,
		Height:     derivedThumbHeight,
		Format:     models.FormatWebp,
		FileSize:   0,
		UploadedAt: time.Now(),
	}
}
