package filestore

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hyemin916/drip-drop-dev/database"
	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/markdown"
	"github.com/hyemin916/drip-drop-dev/models"
)

// PostRepo implements database.PostStore over Markdown documents.
type PostRepo struct {
	store *Store
}

type parsedPost struct {
	fileName string
	meta     markdown.Frontmatter
	body     string
}

func (r *PostRepo) loadAll() ([]parsedPost, error) {
	names, err := r.store.postFiles()
	if err != nil {
		return nil, errs.NewStorageError("list", "posts", err)
	}
	posts := make([]parsedPost, 0, len(names))
	for _, name := range names {
		raw, err := os.ReadFile(r.store.path(name))
		if err != nil {
			return nil, errs.NewStorageError("read", "post", err)
		}
		meta, body, err := markdown.Parse(raw)
		if err != nil {
			return nil, err
		}
		posts = append(posts, parsedPost{fileName: name, meta: meta, body: body})
	}
	return posts, nil
}

// List parses every document, filters, sorts by publication time descending
// (slug ascending breaks ties), and pages in memory. The corpus is a personal
// blog; rescanning the directory per request is deliberate, there is no index
// to fall out of sync.
func (r *PostRepo) List(ctx context.Context, opts database.ListOptions) ([]models.PostSummary, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}

	all, err := r.loadAll()
	if err != nil {
		return nil, 0, err
	}

	var filtered []parsedPost
	for _, p := range all {
		if opts.Category != nil && p.meta.Category != *opts.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.Slice(filtered, func(i, j int) bool {
		pi, pj := filtered[i].meta, filtered[j].meta
		if !pi.PublishedAt.Equal(pj.PublishedAt) {
			return pi.PublishedAt.After(pj.PublishedAt)
		}
		return pi.Slug < pj.Slug
	})

	total := int64(len(filtered))
	start := (opts.Page - 1) * opts.Limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + opts.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	summaries := make([]models.PostSummary, 0, end-start)
	for _, p := range filtered[start:end] {
		summary := models.PostSummary{
			ID:          p.meta.Slug,
			Title:       p.meta.Title,
			Slug:        p.meta.Slug,
			Excerpt:     p.meta.Excerpt,
			Category:    p.meta.Category,
			PublishedAt: p.meta.PublishedAt,
			Author:      p.meta.Author,
			Summary:     p.meta.Excerpt,
		}
		if p.meta.Thumbnail != "" {
			summary.Thumbnail = database.ThumbnailImage(p.meta.Slug, p.meta.Title, p.meta.Thumbnail)
		}
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

func (r *PostRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	name, err := r.store.fileForSlug(slug)
	if err != nil {
		return nil, errs.NewStorageError("find", "post", err)
	}
	if name == "" {
		return nil, errs.NewNotFoundError(fmt.Sprintf("post with slug %q not found", slug))
	}

	raw, err := os.ReadFile(r.store.path(name))
	if err != nil {
		return nil, errs.NewStorageError("read", "post", err)
	}
	meta, body, err := markdown.Parse(raw)
	if err != nil {
		return nil, err
	}
	return toPost(meta, body), nil
}

// Create writes a new document named with today's date and the slug. The
// store mutex closes the gap between the existence check and the write.
func (r *PostRepo) Create(ctx context.Context, data models.PostCreate) (*models.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, err := r.store.fileForSlug(data.Slug)
	if err != nil {
		return nil, errs.NewStorageError("find", "post", err)
	}
	if existing != "" {
		return nil, errs.NewDuplicateSlugError(data.Slug)
	}

	now := time.Now()
	meta := markdown.Frontmatter{
		Title:       data.Title,
		Slug:        data.Slug,
		Excerpt:     data.Excerpt,
		Category:    data.Category,
		PublishedAt: now,
		Author:      data.Author,
	}
	if data.Thumbnail != nil {
		meta.Thumbnail = *data.Thumbnail
	}

	if err := r.write(now.Format("2006-01-02")+"-"+data.Slug+postExt, meta, data.Content); err != nil {
		return nil, err
	}
	return toPost(meta, data.Content), nil
}

// Update rewrites the document in place. When the slug changes the file is
// renamed, keeping the original publication date prefix, and the new slug is
// checked for collisions under the store mutex.
func (r *PostRepo) Update(ctx context.Context, slug string, data models.PostUpdate) (*models.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	name, err := r.store.fileForSlug(slug)
	if err != nil {
		return nil, errs.NewStorageError("find", "post", err)
	}
	if name == "" {
		return nil, errs.NewNotFoundError(fmt.Sprintf("post with slug %q not found", slug))
	}

	raw, err := os.ReadFile(r.store.path(name))
	if err != nil {
		return nil, errs.NewStorageError("read", "post", err)
	}
	meta, body, err := markdown.Parse(raw)
	if err != nil {
		return nil, err
	}

	newName := name
	if data.Slug != nil && *data.Slug != slug {
		collision, err := r.store.fileForSlug(*data.Slug)
		if err != nil {
			return nil, errs.NewStorageError("find", "post", err)
		}
		if collision != "" {
			return nil, errs.NewDuplicateSlugError(*data.Slug)
		}
		meta.Slug = *data.Slug
		newName = name[:datePrefixLen] + "-" + *data.Slug + postExt
	}
	if data.Title != nil {
		meta.Title = *data.Title
	}
	if data.Content != nil {
		body = *data.Content
	}
	if data.Excerpt != nil {
		meta.Excerpt = *data.Excerpt
	}
	if data.Category != nil {
		meta.Category = *data.Category
	}
	if data.Thumbnail != nil {
		meta.Thumbnail = *data.Thumbnail
	}
	now := time.Now()
	meta.UpdatedAt = &now

	if err := r.write(newName, meta, body); err != nil {
		return nil, err
	}
	if newName != name {
		if err := os.Remove(r.store.path(name)); err != nil {
			return nil, errs.NewStorageError("rename", "post", err)
		}
	}
	return toPost(meta, body), nil
}

func (r *PostRepo) Delete(ctx context.Context, slug string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	name, err := r.store.fileForSlug(slug)
	if err != nil {
		return errs.NewStorageError("find", "post", err)
	}
	if name == "" {
		return errs.NewNotFoundError(fmt.Sprintf("post with slug %q not found", slug))
	}
	if err := os.Remove(r.store.path(name)); err != nil {
		return errs.NewStorageError("delete", "post", err)
	}
	return nil
}

func (r *PostRepo) write(name string, meta markdown.Frontmatter, body string) error {
	doc, err := markdown.Serialize(meta, body)
	if err != nil {
		return errs.NewStorageError("serialize", "post", err)
	}
	if err := os.WriteFile(r.store.path(name), doc, 0o644); err != nil {
		return errs.NewStorageError("write", "post", err)
	}
	return nil
}

func toPost(meta markdown.Frontmatter, body string) *models.Post {
	post := &models.Post{
		ID:          meta.Slug,
		Title:       meta.Title,
		Slug:        meta.Slug,
		Content:     body,
		Excerpt:     meta.Excerpt,
		Category:    meta.Category,
		PublishedAt: meta.PublishedAt,
		UpdatedAt:   meta.UpdatedAt,
		Author:      meta.Author,
	}
	database.DeriveImages(post, meta.Thumbnail)
	return post
}
