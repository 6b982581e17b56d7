package freezeguard

import (
	"github.com/spf13/afero"
)

// TrackedEntity defines the contract for content-bearing objects a Watcher
// can observe. The name is used only for diagnostic messages.
type TrackedEntity interface {
	// Name returns a stable identifier for the entity.
	Name() string

	// Content returns the entity's current content.
	Content() ([]byte, error)

	// SetContent replaces the entity's content.
	SetContent(content []byte) error
}

// Buffer is an in-memory tracked entity that owns its content.
type Buffer struct {
	name    string
	content []byte
}

// NewBuffer creates a buffer entity with the given name and initial content.
func NewBuffer(name string, content []byte) *Buffer {
	return &Buffer{
		name:    name,
		content: content,
	}
}

// Name implements the TrackedEntity interface for Buffer.
func (b *Buffer) Name() string {
	return b.name
}

// Content implements the TrackedEntity interface for Buffer.
func (b *Buffer) Content() ([]byte, error) {
	return b.content, nil
}

// SetContent implements the TrackedEntity interface for Buffer.
func (b *Buffer) SetContent(content []byte) error {
	b.content = content
	return nil
}

// File is a tracked entity backed by a file on a filesystem.
type File struct {
	Path     string // Path to the file, also its name in diagnostics
	afero.Fs        // The filesystem to use
}

// Name implements the TrackedEntity interface for File.
func (f File) Name() string {
	return f.Path
}

// Content implements the TrackedEntity interface for File.
func (f File) Content() ([]byte, error) {
	// If no filesystem is provided, use the OS filesystem
	fs := f.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return afero.ReadFile(fs, f.Path)
}

// SetContent implements the TrackedEntity interface for File.
func (f File) SetContent(content []byte) error {
	// If no filesystem is provided, use the OS filesystem
	fs := f.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return afero.WriteFile(fs, f.Path, content, 0o644)
}
