package database

import (
	"testing"

	"github.com/hyemin916/drip-drop-dev/models"
)

func TestDeriveImages(t *testing.T) {
	post := &models.Post{
		Title:   "Illustrated Post",
		Slug:    "illustrated",
		Content: "![one](/a.jpg)\n\n![](/b.jpg \"second caption\")",
	}

	DeriveImages(post, "")

	if len(post.Images) != 2 {
		t.Fatalf("got %d images, want 2", len(post.Images))
	}
	if post.Images[0].ID != "illustrated-img-0" {
		t.Errorf("Images[0].ID = %q", post.Images[0].ID)
	}
	if post.Images[0].Alt != "one" {
		t.Errorf("Images[0].Alt = %q", post.Images[0].Alt)
	}
	// Empty alt falls back to the post title
	if post.Images[1].Alt != "Illustrated Post" {
		t.Errorf("Images[1].Alt = %q, want the post title", post.Images[1].Alt)
	}
	if post.Images[1].Caption == nil || *post.Images[1].Caption != "second caption" {
		t.Errorf("Images[1].Caption = %v", post.Images[1].Caption)
	}

	if post.Thumbnail == nil || post.Thumbnail.URL != "/a.jpg" {
		t.Errorf("Thumbnail = %+v, want first body image", post.Thumbnail)
	}
}

func TestDeriveImagesExplicitThumbnail(t *testing.T) {
	post := &models.Post{
		Title:   "Covered",
		Slug:    "covered",
		Content: "![inline](/inline.jpg)",
	}

	DeriveImages(post, "/cover.jpg")

	if post.Thumbnail == nil || post.Thumbnail.URL != "/cover.jpg" {
		t.Errorf("Thumbnail = %+v, want the explicit url", post.Thumbnail)
	}
	if post.Thumbnail.ID != "covered-thumb" {
		t.Errorf("Thumbnail.ID = %q", post.Thumbnail.ID)
	}
	if post.Thumbnail.Alt != "Covered" {
		t.Errorf("Thumbnail.Alt = %q, want the post title", post.Thumbnail.Alt)
	}
}

func TestDeriveImagesNone(t *testing.T) {
	post := &models.Post{Title: "Plain", Slug: "plain", Content: "no images"}

	DeriveImages(post, "")

	if len(post.Images) != 0 {
		t.Errorf("got %d images, want 0", len(post.Images))
	}
	if post.Thumbnail != nil {
		t.Errorf("Thumbnail = %+v, want nil", post.Thumbnail)
	}
}
