package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/hyemin916/drip-drop-dev/models"
)

// ListOptions selects a page of posts. Page is 1-indexed.
type ListOptions struct {
	Page     int
	Limit    int
	Category *models.Category
}

// PostStore is the persistence contract for posts. Two implementations
// satisfy it: the Postgres-backed repositories in this package and the
// Markdown-file-backed ones in the filestore package. Callers depend only on
// this interface.
type PostStore interface {
	List(ctx context.Context, opts ListOptions) ([]models.PostSummary, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, data models.PostCreate) (*models.Post, error)
	Update(ctx context.Context, slug string, data models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, slug string) error
}

// AboutStore is the persistence contract for the singleton about-me record.
// Get returns a not-found error when the record has never been written;
// Update creates the record on first write and mutates it in place after.
type AboutStore interface {
	Get(ctx context.Context) (*models.AboutMe, error)
	Update(ctx context.Context, data models.AboutMeUpdate, author string) (*models.AboutMe, error)
}

// Database bundles the Postgres-backed repositories over a shared GORM
// database instance.
type Database struct {
	postRepo  *PostRepo
	aboutRepo *AboutRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		postRepo:  NewPostRepo(db),
		aboutRepo: NewAboutRepo(db),
	}
}

func (d Database) Posts() PostStore {
	return d.postRepo
}

func (d Database) About() AboutStore {
	return d.aboutRepo
}

// Migrate creates or updates the posts and about_me tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&postRecord{}, &aboutRecord{}); err != nil {
		return err
	}
	// AutoMigrate cannot express the singleton check on about_me.
	return db.Exec(`DO $$ BEGIN
		ALTER TABLE about_me ADD CONSTRAINT single_about_me CHECK (id = 1);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`).Error
}
