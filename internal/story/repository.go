// Package story provides durable storage of story text addressed by title.
package story

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/storyforge/storyserver/internal/platform/errors"
)

// dateLayout formats the creation date embedded in every story file.
const dateLayout = "January 2, 2006"

// StoredLocation identifies where a story was written.
type StoredLocation struct {
	Filename string
	Path     string
}

// Repository manages a flat directory of markdown story files. The derived
// filename is the story identity: saving a title that slugs to an existing
// filename overwrites the earlier content. Concurrent saves to the same
// filename race at the filesystem level; last writer wins.
type Repository struct {
	dir   string
	clock func() time.Time
}

// NewRepository creates a repository rooted at dir. The directory is created
// lazily on the first save.
func NewRepository(dir string) (*Repository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("story directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve story directory %s: %w", dir, err)
	}
	return &Repository{dir: abs, clock: time.Now}, nil
}

// Dir returns the absolute story directory path.
func (r *Repository) Dir() string {
	return r.dir
}

// WithClock returns a copy of the repository using the given clock. The
// receiver is left untouched. Test use only.
func (r *Repository) WithClock(clock func() time.Time) *Repository {
	clone := *r
	clone.clock = clock
	return &clone
}

// Save writes a markdown story file: an H1 heading with the original title,
// a creation-date line, a blank line, then the content verbatim.
func (r *Repository) Save(title, content string) (StoredLocation, error) {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return StoredLocation{}, errors.New(errors.CodeStoryTitleEmpty, "story title is empty")
	}
	if strings.TrimSpace(content) == "" {
		return StoredLocation{}, errors.WithMetadata(
			errors.CodeStoryContentEmpty,
			fmt.Sprintf("story content is empty for title %q", trimmedTitle),
			map[string]string{"title": trimmedTitle},
		)
	}
	filename := Slugify(trimmedTitle)
	if filename == "" {
		return StoredLocation{}, errors.WithMetadata(
			errors.CodeStoryTitleUnusable,
			fmt.Sprintf("story title %q contains no letters or digits to derive a filename from", trimmedTitle),
			map[string]string{"title": trimmedTitle},
		)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return StoredLocation{}, errors.WrapWithMetadata(
			errors.CodeStorageFailure,
			fmt.Sprintf("create story directory %s: %v", r.dir, err),
			map[string]string{"path": r.dir},
			err,
		)
	}

	path := filepath.Join(r.dir, filename)
	document := fmt.Sprintf("# %s\n\n**Date Created:** %s\n\n%s",
		trimmedTitle, r.clock().Format(dateLayout), content)
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return StoredLocation{}, errors.WrapWithMetadata(
			errors.CodeStorageFailure,
			fmt.Sprintf("write story file %s: %v", path, err),
			map[string]string{"path": path},
			err,
		)
	}

	return StoredLocation{Filename: filename, Path: path}, nil
}

// List returns the filenames of every story in the directory, sorted
// lexicographically. A missing or empty directory yields an empty slice.
// The reason argument is audit-only and does not affect the result.
func (r *Repository) List(reason string) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.WrapWithMetadata(
			errors.CodeStorageFailure,
			fmt.Sprintf("read story directory %s: %v", r.dir, err),
			map[string]string{"path": r.dir},
			err,
		)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		filenames = append(filenames, entry.Name())
	}
	sort.Strings(filenames)
	return filenames, nil
}

// Get returns the full raw content of the named story file. The filename must
// be exactly as returned by List; path traversal is rejected.
func (r *Repository) Get(filename string) (string, error) {
	if err := r.validateFilename(filename); err != nil {
		return "", err
	}

	path := filepath.Join(r.dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WithMetadata(
				errors.CodeStoryNotFound,
				fmt.Sprintf("story file not found: %s", filename),
				map[string]string{"filename": filename},
			)
		}
		return "", errors.WrapWithMetadata(
			errors.CodeStorageFailure,
			fmt.Sprintf("read story file %s: %v", path, err),
			map[string]string{"path": path},
			err,
		)
	}
	return string(data), nil
}

// validateFilename rejects anything that could resolve outside the story
// directory: absolute paths, separators, and parent-directory segments.
func (r *Repository) validateFilename(filename string) error {
	invalid := func() error {
		return errors.WithMetadata(
			errors.CodeStoryFilenameInvalid,
			fmt.Sprintf("invalid story filename: %s", filename),
			map[string]string{"filename": filename},
		)
	}
	if strings.TrimSpace(filename) == "" {
		return invalid()
	}
	if filepath.IsAbs(filename) {
		return invalid()
	}
	if strings.ContainsAny(filename, `/\`) {
		return invalid()
	}
	if filename == "." || filename == ".." {
		return invalid()
	}
	resolved := filepath.Join(r.dir, filename)
	if filepath.Dir(resolved) != r.dir {
		return invalid()
	}
	return nil
}
