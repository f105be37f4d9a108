// Package filestore persists posts as individual Markdown documents with
// frontmatter, one file per post named {YYYY-MM-DD}-{slug}.md, plus a single
// about.md for the about page. It satisfies the same store contract as the
// database package, so the two backends are interchangeable.
package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hyemin916/drip-drop-dev/database"
)

const (
	postExt       = ".md"
	datePrefixLen = len("2006-01-02")
	aboutFileName = "about.md"
)

// Store owns a content directory. The mutex guards the check-then-write
// sequences on create and rename; the filesystem offers no unique constraint
// to catch a concurrent duplicate slug.
type Store struct {
	dir string
	mu  sync.Mutex

	postRepo  *PostRepo
	aboutRepo *AboutRepo
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir}
	s.postRepo = &PostRepo{store: s}
	s.aboutRepo = &AboutRepo{store: s}
	return s, nil
}

func (s *Store) Posts() database.PostStore {
	return s.postRepo
}

func (s *Store) About() database.AboutStore {
	return s.aboutRepo
}

// postFiles lists the post document filenames in the content directory.
func (s *Store) postFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == aboutFileName || !strings.HasSuffix(name, postExt) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// fileForSlug returns the filename holding the given slug, or "" when no
// post with that slug exists. Filenames are {date}-{slug}.md, so the slug is
// everything after the date prefix and its hyphen.
func (s *Store) fileForSlug(slug string) (string, error) {
	names, err := s.postFiles()
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if slugFromFileName(name) == slug {
			return name, nil
		}
	}
	return "", nil
}

func slugFromFileName(name string) string {
	trimmed := strings.TrimSuffix(name, postExt)
	if len(trimmed) <= datePrefixLen+1 {
		return ""
	}
	return trimmed[datePrefixLen+1:]
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
