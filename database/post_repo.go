package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

// postRecord is the posts table row. The derived Images/Thumbnail fields of
// models.Post are not persisted; they are recomputed from Content at read
// time.
type postRecord struct {
	ID          uint       `gorm:"primaryKey"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Content     string     `gorm:"type:text;not null"`
	Excerpt     string     `gorm:"type:varchar(200);not null"`
	Category    string     `gorm:"type:varchar(50);not null;index"`
	Thumbnail   *string    `gorm:"type:varchar(500)"`
	Author      string     `gorm:"type:varchar(100);not null"`
	PublishedAt time.Time  `gorm:"not null;index"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	CreatedAt   time.Time
}

func (postRecord) TableName() string {
	return "posts"
}

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// List returns one page of post summaries ordered by publication time
// descending (slug ascending breaks ties) plus the total count of matching
// posts before pagination.
func (r *PostRepo) List(ctx context.Context, opts ListOptions) ([]models.PostSummary, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}

	query := r.db.WithContext(ctx).Model(&postRecord{})
	if opts.Category != nil {
		query = query.Where("category = ?", string(*opts.Category))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errs.NewStorageError("count", "posts", err)
	}

	var rows []postRecord
	err := query.
		Order("published_at DESC, slug ASC").
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errs.NewStorageError("list", "posts", err)
	}

	summaries := make([]models.PostSummary, 0, len(rows))
	for _, row := range rows {
		summary := models.PostSummary{
			ID:          row.Slug,
			Title:       row.Title,
			Slug:        row.Slug,
			Excerpt:     row.Excerpt,
			Category:    models.Category(row.Category),
			PublishedAt: row.PublishedAt,
			Author:      row.Author,
			Summary:     row.Excerpt,
		}
		if row.Thumbnail != nil && *row.Thumbnail != "" {
			summary.Thumbnail = ThumbnailImage(row.Slug, row.Title, *row.Thumbnail)
		}
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

// GetBySlug loads the full post and computes its derived image fields.
func (r *PostRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var row postRecord
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("post with slug %q not found", slug))
		}
		return nil, errs.NewStorageError("find", "post", err)
	}
	return r.toPost(row), nil
}

// Create inserts a new post with the current time as its publication
// timestamp. Slug uniqueness is enforced by the unique index; a constraint
// violation surfaces as a duplicate-slug error rather than relying on a
// racy pre-check.
func (r *PostRepo) Create(ctx context.Context, data models.PostCreate) (*models.Post, error) {
	row := postRecord{
		Slug:        data.Slug,
		Title:       data.Title,
		Content:     data.Content,
		Excerpt:     data.Excerpt,
		Category:    string(data.Category),
		Thumbnail:   data.Thumbnail,
		Author:      data.Author,
		PublishedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errs.NewDuplicateSlugError(data.Slug)
		}
		return nil, errs.NewStorageError("create", "post", err)
	}
	return r.toPost(row), nil
}

// Import inserts a post while preserving its original timestamps. Used when
// copying content over from the markdown backend.
func (r *PostRepo) Import(ctx context.Context, post models.Post) error {
	var thumbnail *string
	if post.Thumbnail != nil && post.Thumbnail.URL != "" {
		url := post.Thumbnail.URL
		thumbnail = &url
	}

	row := postRecord{
		Slug:        post.Slug,
		Title:       post.Title,
		Content:     post.Content,
		Excerpt:     post.Excerpt,
		Category:    string(post.Category),
		Thumbnail:   thumbnail,
		Author:      post.Author,
		PublishedAt: post.PublishedAt,
		UpdatedAt:   post.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewDuplicateSlugError(post.Slug)
		}
		return errs.NewStorageError("import", "post", err)
	}
	return nil
}

// Update applies a partial update. A slug change is checked against existing
// posts first and still guarded by the unique index. updatedAt is refreshed
// on every successful update regardless of which fields changed.
func (r *PostRepo) Update(ctx context.Context, slug string, data models.PostUpdate) (*models.Post, error) {
	var row postRecord
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("post with slug %q not found", slug))
		}
		return nil, errs.NewStorageError("find", "post", err)
	}

	if data.Slug != nil && *data.Slug != slug {
		var count int64
		if err := r.db.WithContext(ctx).Model(&postRecord{}).Where("slug = ?", *data.Slug).Count(&count).Error; err != nil {
			return nil, errs.NewStorageError("find", "post", err)
		}
		if count > 0 {
			return nil, errs.NewDuplicateSlugError(*data.Slug)
		}
		row.Slug = *data.Slug
	}
	if data.Title != nil {
		row.Title = *data.Title
	}
	if data.Content != nil {
		row.Content = *data.Content
	}
	if data.Excerpt != nil {
		row.Excerpt = *data.Excerpt
	}
	if data.Category != nil {
		row.Category = string(*data.Category)
	}
	if data.Thumbnail != nil {
		row.Thumbnail = data.Thumbnail
	}
	now := time.Now()
	row.UpdatedAt = &now

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errs.NewDuplicateSlugError(row.Slug)
		}
		return nil, errs.NewStorageError("update", "post", err)
	}
	return r.toPost(row), nil
}

// Delete removes a post by slug.
func (r *PostRepo) Delete(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&postRecord{})
	if result.Error != nil {
		return errs.NewStorageError("delete", "post", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError(fmt.Sprintf("post with slug %q not found", slug))
	}
	return nil
}

func (r *PostRepo) toPost(row postRecord) *models.Post {
	post := &models.Post{
		ID:          row.Slug,
		Title:       row.Title,
		Slug:        row.Slug,
		Content:     row.Content,
		Excerpt:     row.Excerpt,
		Category:    models.Category(row.Category),
		PublishedAt: row.PublishedAt,
		UpdatedAt:   row.UpdatedAt,
		Author:      row.Author,
	}
	explicit := ""
	if row.Thumbnail != nil {
		explicit = *row.Thumbnail
	}
	DeriveImages(post, explicit)
	return post
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "unique constraint")
}
