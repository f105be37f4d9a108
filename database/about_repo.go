package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

// aboutRecord is the singleton about_me row; the id is always 1 and the
// table carries a CHECK constraint to keep it that way.
type aboutRecord struct {
	ID        int       `gorm:"primaryKey"`
	Content   string    `gorm:"type:text;not null"`
	Image     string    `gorm:"type:varchar(500)"`
	Email     string    `gorm:"type:varchar(255)"`
	Github    string    `gorm:"type:varchar(500)"`
	Twitter   string    `gorm:"type:varchar(500)"`
	Linkedin  string    `gorm:"type:varchar(500)"`
	Author    string    `gorm:"type:varchar(100);not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	CreatedAt time.Time
}

func (aboutRecord) TableName() string {
	return "about_me"
}

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// Get returns the about-me record, or a not-found error if it has never been
// written.
func (r *AboutRepo) Get(ctx context.Context) (*models.AboutMe, error) {
	var row aboutRecord
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("about content not found")
		}
		return nil, errs.NewStorageError("find", "about_me", err)
	}
	return toAboutMe(row), nil
}

// Update creates the record on first write, otherwise mutates it in place.
// updatedAt is always refreshed.
func (r *AboutRepo) Update(ctx context.Context, data models.AboutMeUpdate, author string) (*models.AboutMe, error) {
	row := aboutRecord{
		ID:        1,
		Content:   data.Content,
		Image:     data.Image,
		Email:     data.Email,
		Github:    data.Github,
		Twitter:   data.Twitter,
		Linkedin:  data.Linkedin,
		Author:    author,
		UpdatedAt: time.Now(),
	}

	var existing aboutRecord
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, errs.NewStorageError("create", "about_me", err)
		}
	case err != nil:
		return nil, errs.NewStorageError("find", "about_me", err)
	default:
		row.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
			return nil, errs.NewStorageError("update", "about_me", err)
		}
	}
	return toAboutMe(row), nil
}

func toAboutMe(row aboutRecord) *models.AboutMe {
	return &models.AboutMe{
		ID:        models.AboutMeID,
		Content:   row.Content,
		UpdatedAt: row.UpdatedAt,
		Author:    row.Author,
		Image:     row.Image,
		Email:     row.Email,
		Github:    row.Github,
		Twitter:   row.Twitter,
		Linkedin:  row.Linkedin,
	}
}
