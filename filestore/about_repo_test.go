package filestore

import (
	"context"
	"testing"

	"github.com/hyemin916/drip-drop-dev/database"
	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

func TestAboutMissing(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.About().Get(context.Background())
	if err == nil {
		t.Fatal("Get should fail before the about page is written")
	}
	if !errs.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestAboutUpdateCreatesAndReads(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	written, err := s.About().Update(ctx, models.AboutMeUpdate{
		Content: "Hi, I write about daily life and development.",
		Email:   "hyemin@example.com",
		Github:  "https://github.com/hyemin916",
	}, "Hyemin")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if written.ID != models.AboutMeID {
		t.Errorf("ID = %q, want %q", written.ID, models.AboutMeID)
	}
	if written.Author != "Hyemin" {
		t.Errorf("Author = %q, want %q", written.Author, "Hyemin")
	}
	if written.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}

	got, err := s.About().Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Content != written.Content {
		t.Errorf("Content = %q, want %q", got.Content, written.Content)
	}
	if got.Email != "hyemin@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if got.Github != "https://github.com/hyemin916" {
		t.Errorf("Github = %q", got.Github)
	}
	if got.Twitter != "" {
		t.Errorf("Twitter = %q, want empty", got.Twitter)
	}
}

func TestAboutUpdateReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if _, err := s.About().Update(ctx, models.AboutMeUpdate{
		Content: "first version",
		Twitter: "https://twitter.com/hyemin",
	}, "Hyemin"); err != nil {
		t.Fatalf("first Update failed: %v", err)
	}

	// A later write without twitter clears it; the update is whole-document
	if _, err := s.About().Update(ctx, models.AboutMeUpdate{
		Content: "second version",
	}, "Hyemin"); err != nil {
		t.Fatalf("second Update failed: %v", err)
	}

	got, err := s.About().Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Content != "second version" {
		t.Errorf("Content = %q, want %q", got.Content, "second version")
	}
	if got.Twitter != "" {
		t.Errorf("Twitter = %q, want cleared", got.Twitter)
	}
}

func TestAboutFileIsNotAPost(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if _, err := s.About().Update(ctx, models.AboutMeUpdate{Content: "about text"}, "Hyemin"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	_, total, err := s.Posts().List(ctx, database.ListOptions{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 {
		t.Errorf("about.md leaked into the post listing, total = %d", total)
	}
}
