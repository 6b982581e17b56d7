package freezeguard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func createTestFile(t *testing.T, fs afero.Fs, path string, content []byte) {
	t.Helper()
	if err := afero.WriteFile(fs, path, content, 0o644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", path, err)
	}
}

func TestBufferEntity(t *testing.T) {
	entity := NewBuffer("config.json", []byte("initial"))

	if entity.Name() != "config.json" {
		t.Errorf("Name() = %q, want %q", entity.Name(), "config.json")
	}

	content, err := entity.Content()
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	if !bytes.Equal(content, []byte("initial")) {
		t.Errorf("Content() = %q, want %q", content, "initial")
	}

	if err := entity.SetContent([]byte("replaced")); err != nil {
		t.Fatalf("SetContent() error = %v", err)
	}
	content, err = entity.Content()
	if err != nil {
		t.Fatalf("Content() after SetContent error = %v", err)
	}
	if !bytes.Equal(content, []byte("replaced")) {
		t.Errorf("Content() = %q, want %q", content, "replaced")
	}
}

func TestFileEntity(t *testing.T) {
	memFs := afero.NewMemMapFs()
	path := "/build/manifest.json"
	createTestFile(t, memFs, path, []byte(`{"phase":1}`))

	entity := File{Path: path, Fs: memFs}

	if entity.Name() != path {
		t.Errorf("Name() = %q, want the path %q", entity.Name(), path)
	}

	content, err := entity.Content()
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	if !bytes.Equal(content, []byte(`{"phase":1}`)) {
		t.Errorf("Content() = %q, want %q", content, `{"phase":1}`)
	}

	if err := entity.SetContent([]byte(`{"phase":2}`)); err != nil {
		t.Fatalf("SetContent() error = %v", err)
	}

	// The write must be visible on the filesystem, not just in memory.
	onDisk, err := afero.ReadFile(memFs, path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if !bytes.Equal(onDisk, []byte(`{"phase":2}`)) {
		t.Errorf("file content = %q, want %q", onDisk, `{"phase":2}`)
	}
}

func TestWatcherOverFileEntity(t *testing.T) {
	memFs := afero.NewMemMapFs()
	path := "/build/output.txt"
	createTestFile(t, memFs, path, []byte("generated"))

	w := New(File{Path: path, Fs: memFs})
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	_, err := w.SetContent([]byte("tampered"))
	var changed *ChangeAfterFreezeError
	if !errors.As(err, &changed) {
		t.Fatalf("divergent file write error = %v, want ChangeAfterFreezeError", err)
	}
	if changed.Name != path {
		t.Errorf("error names %q, want %q", changed.Name, path)
	}

	// Commit-first: the file already holds the new content.
	onDisk, err := afero.ReadFile(memFs, path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if !bytes.Equal(onDisk, []byte("tampered")) {
		t.Errorf("file content = %q, want the committed %q", onDisk, "tampered")
	}
}

func TestWatchMissingFile(t *testing.T) {
	memFs := afero.NewMemMapFs()
	w := New(File{Path: "/nonexistent.txt", Fs: memFs})

	err := w.Watch()
	if err == nil {
		t.Fatal("Watch() over a missing file should fail")
	}
	if !strings.Contains(err.Error(), "/nonexistent.txt") {
		t.Errorf("error %q does not mention the path", err.Error())
	}
	if w.Armed() {
		t.Error("watcher should stay unarmed after a failed Watch()")
	}
}

func TestSetContentMissingDirectory(t *testing.T) {
	// MemMapFs creates parent directories on write, so use a read-only
	// wrapper to provoke a setter failure instead.
	memFs := afero.NewMemMapFs()
	path := "/frozen.txt"
	createTestFile(t, memFs, path, []byte("A"))
	roFs := afero.NewReadOnlyFs(memFs)

	w := New(File{Path: path, Fs: roFs})
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if _, err := w.SetContent([]byte("B")); err == nil {
		t.Fatal("SetContent() on a read-only filesystem should fail")
	}
}
