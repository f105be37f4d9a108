package models

import (
	"strings"
	"testing"

	"github.com/hyemin916/drip-drop-dev/errs"
)

func validCreate() PostCreate {
	return PostCreate{
		Title:    "A Post",
		Slug:     "a-post",
		Content:  "body",
		Excerpt:  "short",
		Category: CategoryDev,
		Author:   "Hyemin",
	}
}

func TestPostCreateValidate(t *testing.T) {
	if err := validCreate().Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*PostCreate)
	}{
		{"empty title", func(p *PostCreate) { p.Title = "" }},
		{"title too long", func(p *PostCreate) { p.Title = strings.Repeat("a", MaxTitleLength+1) }},
		{"empty slug", func(p *PostCreate) { p.Slug = "" }},
		{"uppercase slug", func(p *PostCreate) { p.Slug = "A-Post" }},
		{"slug with spaces", func(p *PostCreate) { p.Slug = "a post" }},
		{"content too long", func(p *PostCreate) { p.Content = strings.Repeat("a", MaxContentLength+1) }},
		{"excerpt too long", func(p *PostCreate) { p.Excerpt = strings.Repeat("a", MaxExcerptLength+1) }},
		{"unknown category", func(p *PostCreate) { p.Category = "Cooking" }},
		{"empty author", func(p *PostCreate) { p.Author = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreate()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate should fail")
			}
		})
	}
}

func TestPostUpdateValidate(t *testing.T) {
	if err := (PostUpdate{}).Validate(); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}

	empty := ""
	if err := (PostUpdate{Title: &empty}).Validate(); err == nil {
		t.Error("empty title should be rejected")
	}

	badSlug := "Bad Slug"
	if err := (PostUpdate{Slug: &badSlug}).Validate(); err == nil {
		t.Error("invalid slug should be rejected")
	}

	badCategory := Category("Cooking")
	err := (PostUpdate{Category: &badCategory}).Validate()
	if err == nil {
		t.Fatal("unknown category should be rejected")
	}
	if !errs.IsInvalidCategoryError(err) {
		t.Errorf("error = %v, want invalid-category error", err)
	}
}

func TestValidSlug(t *testing.T) {
	for _, slug := range []string{"a", "a-b-c", "post-123", "2024-review"} {
		if !ValidSlug(slug) {
			t.Errorf("ValidSlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range []string{"", "A", "a_b", "a b", "héllo", "a/b"} {
		if ValidSlug(slug) {
			t.Errorf("ValidSlug(%q) = true, want false", slug)
		}
	}
}
