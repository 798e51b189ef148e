package mdscan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fencelint/fencelint/pkg/mdscan"
)

func writeFiles(t *testing.T, dir string, names []string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("# doc\n"), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestDiscover_Recursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, []string{
		"readme.md",
		"docs/guide.md",
		"docs/api.markdown",
		"src/main.go",
		"notes.txt",
	})

	files, err := mdscan.Discover(context.Background(), dir, mdscan.Options{})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "docs/api.markdown"),
		filepath.Join(dir, "docs/guide.md"),
		filepath.Join(dir, "readme.md"),
	}

	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(files), files)
	}
	for i, exp := range expected {
		if files[i] != exp {
			t.Errorf("files[%d] = %s, want %s", i, files[i], exp)
		}
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := mdscan.Discover(context.Background(), filepath.Join(t.TempDir(), "absent"), mdscan.Options{})

	var notFound *mdscan.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDiscover_RootIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, []string{"readme.md"})

	_, err := mdscan.Discover(context.Background(), filepath.Join(dir, "readme.md"), mdscan.Options{})

	var notFound *mdscan.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDiscover_Empty(t *testing.T) {
	t.Parallel()

	files, err := mdscan.Discover(context.Background(), t.TempDir(), mdscan.Options{})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %v", files)
	}
}

func TestDiscover_Exclude(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, []string{
		"readme.md",
		"slides/deck.md",
		"docs/slides/intro.md",
		"docs/guide.md",
	})

	opts := mdscan.Options{Exclude: []string{"**slides/**", "slides/**"}}

	files, err := mdscan.Discover(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "docs/guide.md"),
		filepath.Join(dir, "readme.md"),
	}

	if len(files) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, files)
	}
	for i, exp := range expected {
		if files[i] != exp {
			t.Errorf("files[%d] = %s, want %s", i, files[i], exp)
		}
	}
}

func TestDiscover_HiddenDirsSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, []string{
		".git/notes.md",
		"readme.md",
	})

	files, err := mdscan.Discover(context.Background(), dir, mdscan.Options{})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(dir, "readme.md") {
		t.Fatalf("expected only readme.md, got %v", files)
	}
}

func TestDiscover_BadExcludePattern(t *testing.T) {
	t.Parallel()

	_, err := mdscan.Discover(context.Background(), t.TempDir(), mdscan.Options{Exclude: []string{"[unclosed"}})
	if err == nil {
		t.Fatal("expected error for malformed exclude pattern")
	}
}
