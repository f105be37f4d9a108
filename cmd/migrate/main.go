// Command migrate copies markdown content into the Postgres backend. Posts
// whose slug already exists in the database are left alone, so the command is
// safe to re-run.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hyemin916/drip-drop-dev/config"
	"github.com/hyemin916/drip-drop-dev/database"
	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/markdown"
	"github.com/hyemin916/drip-drop-dev/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	if err := run(context.Background(), c); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, c map[string]string) error {
	connStr := config.GetString(c, config.KeyDatabaseURL, "")
	if connStr == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	contentDir := config.GetString(c, config.KeyContentDir, "content/posts")

	imported, skipped, err := migratePosts(ctx, db, contentDir)
	if err != nil {
		return err
	}
	log.Info().Int("imported", imported).Int("skipped", skipped).Msg("posts migrated")

	if err := migrateAbout(ctx, db, contentDir, c); err != nil {
		return err
	}

	return nil
}

func migratePosts(ctx context.Context, db *gorm.DB, contentDir string) (imported, skipped int, err error) {
	entries, err := os.ReadDir(contentDir)
	if err != nil {
		return 0, 0, fmt.Errorf("reading content directory: %w", err)
	}

	posts := database.NewPostRepo(db)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == "about.md" || filepath.Ext(name) != ".md" {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(contentDir, name))
		if err != nil {
			return imported, skipped, fmt.Errorf("reading %s: %w", name, err)
		}

		fm, body, err := markdown.Parse(raw)
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("skipping unparseable file")
			skipped++
			continue
		}

		post := models.Post{
			Title:       fm.Title,
			Slug:        fm.Slug,
			Content:     body,
			Excerpt:     fm.Excerpt,
			Category:    fm.Category,
			PublishedAt: fm.PublishedAt,
			UpdatedAt:   fm.UpdatedAt,
			Author:      fm.Author,
		}
		if fm.Thumbnail != "" {
			post.Thumbnail = database.ThumbnailImage(fm.Slug, fm.Title, fm.Thumbnail)
		}

		if err := posts.Import(ctx, post); err != nil {
			if errs.IsDuplicateSlug(err) {
				log.Info().Str("slug", fm.Slug).Msg("already migrated, skipping")
				skipped++
				continue
			}
			return imported, skipped, err
		}

		log.Info().Str("slug", fm.Slug).Str("file", name).Msg("imported post")
		imported++
	}

	return imported, skipped, nil
}

func migrateAbout(ctx context.Context, db *gorm.DB, contentDir string, c map[string]string) error {
	raw, err := os.ReadFile(filepath.Join(contentDir, "about.md"))
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Msg("no about.md, skipping about migration")
			return nil
		}
		return fmt.Errorf("reading about.md: %w", err)
	}

	about := database.NewAboutRepo(db)
	if _, err := about.Get(ctx); err == nil {
		log.Info().Msg("about page already migrated, skipping")
		return nil
	} else if !errs.IsNotFound(err) {
		return err
	}

	var meta struct {
		Image    string `yaml:"image"`
		Email    string `yaml:"email"`
		Github   string `yaml:"github"`
		Twitter  string `yaml:"twitter"`
		Linkedin string `yaml:"linkedin"`
	}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return fmt.Errorf("parsing about.md: %w", err)
	}

	owner := models.OwnerFromConfig(c)
	data := models.AboutMeUpdate{
		Content:  strings.TrimSpace(string(body)),
		Image:    meta.Image,
		Email:    meta.Email,
		Github:   meta.Github,
		Twitter:  meta.Twitter,
		Linkedin: meta.Linkedin,
	}

	if _, err := about.Update(ctx, data, owner.Name); err != nil {
		return err
	}
	log.Info().Msg("imported about page")
	return nil
}
