package domain

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/storyforge/storyserver/internal/platform/errors"
	"github.com/storyforge/storyserver/internal/story"
	"github.com/storyforge/storyserver/internal/telemetry"
)

func newTestRepo(t *testing.T) *story.Repository {
	t.Helper()
	repo, err := story.NewRepository(filepath.Join(t.TempDir(), "stories"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func TestStorySaveHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newTestRepo(t)
		store := &recordingStore{}
		handler := StorySaveHandler(repo, telemetry.NewEmitter(store))

		toolResult, result, err := handler(context.Background(), nil, StorySaveInput{
			Title:   "Jack's Adventure",
			Content: "Jack turned invisible and slipped past the guards.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Filename != "jacks_adventure.md" {
			t.Errorf("expected filename jacks_adventure.md, got %q", result.Filename)
		}
		if !strings.HasSuffix(result.Path, "jacks_adventure.md") {
			t.Errorf("unexpected path %q", result.Path)
		}
		confirmation := textOf(t, toolResult)
		if !strings.HasPrefix(confirmation, "Story has been saved at: ") {
			t.Errorf("unexpected confirmation %q", confirmation)
		}
		if !strings.Contains(confirmation, result.Path) {
			t.Errorf("confirmation should include the path, got %q", confirmation)
		}
		if len(store.events) != 1 || store.events[0].Detail != "jacks_adventure.md" {
			t.Errorf("expected audit event with filename, got %+v", store.events)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		handler := StorySaveHandler(newTestRepo(t), telemetry.NewEmitter(nil))

		_, _, err := handler(context.Background(), nil, StorySaveInput{Title: "", Content: "x"})
		if errors.CodeOf(err) != errors.CodeStoryTitleEmpty {
			t.Errorf("expected STORY_TITLE_EMPTY, got %v", err)
		}
		_, _, err = handler(context.Background(), nil, StorySaveInput{Title: "T", Content: "  "})
		if errors.CodeOf(err) != errors.CodeStoryContentEmpty {
			t.Errorf("expected STORY_CONTENT_EMPTY, got %v", err)
		}
	})
}

func TestStoryListHandler(t *testing.T) {
	repo := newTestRepo(t)
	store := &recordingStore{}
	handler := StoryListHandler(repo, telemetry.NewEmitter(store))

	// Missing directory lists as empty.
	_, result, err := handler(context.Background(), nil, StoryListInput{Reason: "startup probe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Stories) != 0 {
		t.Fatalf("expected empty listing, got %v", result.Stories)
	}

	saveHandler := StorySaveHandler(repo, telemetry.NewEmitter(nil))
	for _, title := range []string{"Beta", "Alpha"} {
		if _, _, err := saveHandler(context.Background(), nil, StorySaveInput{Title: title, Content: "body"}); err != nil {
			t.Fatalf("save %q: %v", title, err)
		}
	}

	_, result, err = handler(context.Background(), nil, StoryListInput{Reason: "audit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Stories) != 2 || result.Stories[0] != "alpha.md" || result.Stories[1] != "beta.md" {
		t.Fatalf("expected sorted listing, got %v", result.Stories)
	}

	// The reason is recorded for diagnostics.
	if len(store.events) != 2 || store.events[1].Detail != "audit" {
		t.Errorf("expected audited reasons, got %+v", store.events)
	}
}

func TestStoryGetHandler(t *testing.T) {
	repo := newTestRepo(t)
	saveHandler := StorySaveHandler(repo, telemetry.NewEmitter(nil))
	if _, _, err := saveHandler(context.Background(), nil, StorySaveInput{
		Title:   "Night Run",
		Content: "The alarm stayed silent.",
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	handler := StoryGetHandler(repo, telemetry.NewEmitter(nil))

	t.Run("success", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, StoryGetInput{Filename: "night_run.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content := textOf(t, toolResult)
		if !strings.Contains(content, "# Night Run") || !strings.Contains(content, "The alarm stayed silent.") {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := handler(context.Background(), nil, StoryGetInput{Filename: "missing.md"})
		if errors.CodeOf(err) != errors.CodeStoryNotFound {
			t.Errorf("expected STORY_NOT_FOUND, got %v", err)
		}
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, _, err := handler(context.Background(), nil, StoryGetInput{Filename: "../../etc/passwd"})
		if errors.CodeOf(err) != errors.CodeStoryFilenameInvalid {
			t.Errorf("expected STORY_FILENAME_INVALID, got %v", err)
		}
	})
}
