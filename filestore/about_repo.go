package filestore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

// AboutRepo implements database.AboutStore as a single about.md document.
type AboutRepo struct {
	store *Store
}

// aboutMeta is the frontmatter of about.md; the document body is the
// about-page content itself.
type aboutMeta struct {
	Author    string    `yaml:"author"`
	UpdatedAt time.Time `yaml:"updatedAt"`
	Image     string    `yaml:"image,omitempty"`
	Email     string    `yaml:"email,omitempty"`
	Github    string    `yaml:"github,omitempty"`
	Twitter   string    `yaml:"twitter,omitempty"`
	Linkedin  string    `yaml:"linkedin,omitempty"`
}

func (r *AboutRepo) Get(ctx context.Context) (*models.AboutMe, error) {
	raw, err := os.ReadFile(r.store.path(aboutFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewNotFoundError("about content not found")
		}
		return nil, errs.NewStorageError("read", "about", err)
	}

	var meta aboutMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return nil, errs.NewMalformedPayloadError("frontmatter", err)
	}

	return &models.AboutMe{
		ID:        models.AboutMeID,
		Content:   strings.TrimSpace(string(body)),
		UpdatedAt: meta.UpdatedAt,
		Author:    meta.Author,
		Image:     meta.Image,
		Email:     meta.Email,
		Github:    meta.Github,
		Twitter:   meta.Twitter,
		Linkedin:  meta.Linkedin,
	}, nil
}

func (r *AboutRepo) Update(ctx context.Context, data models.AboutMeUpdate, author string) (*models.AboutMe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	meta := aboutMeta{
		Author:    author,
		UpdatedAt: now,
		Image:     data.Image,
		Email:     data.Email,
		Github:    data.Github,
		Twitter:   data.Twitter,
		Linkedin:  data.Linkedin,
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(meta); err != nil {
		return nil, errs.NewStorageError("serialize", "about", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errs.NewStorageError("serialize", "about", err)
	}
	fmt.Fprintf(&buf, "---\n\n%s\n", strings.TrimSpace(data.Content))

	if err := os.WriteFile(r.store.path(aboutFileName), buf.Bytes(), 0o644); err != nil {
		return nil, errs.NewStorageError("write", "about", err)
	}

	return &models.AboutMe{
		ID:        models.AboutMeID,
		Content:   strings.TrimSpace(data.Content),
		UpdatedAt: now,
		Author:    author,
		Image:     data.Image,
		Email:     data.Email,
		Github:    data.Github,
		Twitter:   data.Twitter,
		Linkedin:  data.Linkedin,
	}, nil
}
