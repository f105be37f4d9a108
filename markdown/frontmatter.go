// Package markdown implements the content codec for post documents: a YAML
// frontmatter block delimited by "---" lines followed by a Markdown body,
// plus extraction of embedded image references from bodies.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

// Frontmatter is the structured metadata block of a post document.
type Frontmatter struct {
	Title       string          `yaml:"title"`
	Slug        string          `yaml:"slug"`
	Excerpt     string          `yaml:"excerpt"`
	Category    models.Category `yaml:"category"`
	PublishedAt time.Time       `yaml:"publishedAt"`
	UpdatedAt   *time.Time      `yaml:"updatedAt,omitempty"`
	Thumbnail   string          `yaml:"thumbnail,omitempty"`
	Author      string          `yaml:"author"`
}

// envelope decodes the raw block before normalization; category stays a plain
// string so both spellings survive decoding.
type envelope struct {
	Title       string     `yaml:"title"`
	Slug        string     `yaml:"slug"`
	Excerpt     string     `yaml:"excerpt"`
	Category    string     `yaml:"category"`
	PublishedAt time.Time  `yaml:"publishedAt"`
	UpdatedAt   *time.Time `yaml:"updatedAt"`
	Thumbnail   string     `yaml:"thumbnail"`
	Author      string     `yaml:"author"`
}

// Parse splits a raw document into its metadata and trimmed body. It fails
// when a required field (title, slug, category, publishedAt, author) is
// absent, or when the category is not one of the recognized spellings.
// Category values are normalized to the canonical English token.
func Parse(raw []byte) (Frontmatter, string, error) {
	var env envelope
	body, err := frontmatter.Parse(bytes.NewReader(raw), &env)
	if err != nil {
		return Frontmatter{}, "", errs.NewMalformedPayloadError("frontmatter", err)
	}

	for field, value := range map[string]string{
		"title":    env.Title,
		"slug":     env.Slug,
		"category": env.Category,
		"author":   env.Author,
	} {
		if value == "" {
			return Frontmatter{}, "", errs.NewMissingRequiredFieldError(field)
		}
	}
	if env.PublishedAt.IsZero() {
		return Frontmatter{}, "", errs.NewMissingRequiredFieldError("publishedAt")
	}

	category, ok := models.NormalizeCategory(env.Category)
	if !ok {
		return Frontmatter{}, "", errs.NewInvalidCategoryError(env.Category)
	}

	return Frontmatter{
		Title:       env.Title,
		Slug:        env.Slug,
		Excerpt:     env.Excerpt,
		Category:    category,
		PublishedAt: env.PublishedAt,
		UpdatedAt:   env.UpdatedAt,
		Thumbnail:   env.Thumbnail,
		Author:      env.Author,
	}, strings.TrimSpace(string(body)), nil
}

// Serialize is the inverse of Parse: it emits the metadata block followed by
// the body. Optional keys (updatedAt, thumbnail) are omitted when unset.
func Serialize(fm Frontmatter, body string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.WriteString(&buf, "---\n"); err != nil {
		return nil, err
	}
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(fm); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "---\n\n%s\n", strings.TrimSpace(body))
	return buf.Bytes(), nil
}
