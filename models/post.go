package models

import (
	"regexp"
	"time"

	"github.com/hyemin916/drip-drop-dev/errs"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 50000
	MaxExcerptLength = 200
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Post is a complete content item, including the fields derived from its body
// at read time (Images and the effective Thumbnail).
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	Category    Category   `json:"category"`
	PublishedAt time.Time  `json:"publishedAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	Thumbnail   *Image     `json:"thumbnail"`
	Images      []Image    `json:"images"`
	Author      string     `json:"author"`
}

// PostSummary is the reduced projection used in list views.
type PostSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Category    Category  `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	Thumbnail   *Image    `json:"thumbnail"`
	Author      string    `json:"author"`
	Summary     string    `json:"summary"`
}

// PostCreate is the payload for creating a post.
type PostCreate struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Category  Category `json:"category"`
	Thumbnail *string  `json:"thumbnail"`
	Author    string   `json:"author"`
}

// PostUpdate is a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title     *string   `json:"title"`
	Slug      *string   `json:"slug"`
	Content   *string   `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Category  *Category `json:"category"`
	Thumbnail *string   `json:"thumbnail"`
}

// ValidSlug reports whether s is lowercase alphanumeric plus hyphens.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func (p PostCreate) Validate() error {
	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if len(p.Title) > MaxTitleLength {
		return errs.NewInvalidFieldError("title", "must be at most 200 characters")
	}
	if p.Slug == "" {
		return errs.NewMissingRequiredFieldError("slug")
	}
	if !ValidSlug(p.Slug) {
		return errs.NewInvalidFieldError("slug", "must contain only lowercase letters, digits, and hyphens")
	}
	if len(p.Content) > MaxContentLength {
		return errs.NewInvalidFieldError("content", "must be at most 50000 characters")
	}
	if len(p.Excerpt) > MaxExcerptLength {
		return errs.NewInvalidFieldError("excerpt", "must be at most 200 characters")
	}
	if !p.Category.Valid() {
		return errs.NewInvalidCategoryError(string(p.Category))
	}
	if p.Author == "" {
		return errs.NewMissingRequiredFieldError("author")
	}
	return nil
}

func (p PostUpdate) Validate() error {
	if p.Title != nil {
		if *p.Title == "" {
			return errs.NewInvalidFieldError("title", "must not be empty")
		}
		if len(*p.Title) > MaxTitleLength {
			return errs.NewInvalidFieldError("title", "must be at most 200 characters")
		}
	}
	if p.Slug != nil && !ValidSlug(*p.Slug) {
		return errs.NewInvalidFieldError("slug", "must contain only lowercase letters, digits, and hyphens")
	}
	if p.Content != nil && len(*p.Content) > MaxContentLength {
		return errs.NewInvalidFieldError("content", "must be at most 50000 characters")
	}
	if p.Excerpt != nil && len(*p.Excerpt) > MaxExcerptLength {
		return errs.NewInvalidFieldError("excerpt", "must be at most 200 characters")
	}
	if p.Category != nil && !p.Category.Valid() {
		return errs.NewInvalidCategoryError(string(*p.Category))
	}
	return nil
}

// Summarize reduces a post to its list projection.
func (p Post) Summarize() PostSummary {
	return PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		PublishedAt: p.PublishedAt,
		Thumbnail:   p.Thumbnail,
		Author:      p.Author,
		Summary:     p.Excerpt,
	}
}
