package freezeguard

import (
	"bytes"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc defines a function that creates a new hash.Hash instance.
type HashFunc func() hash.Hash

// ChangeFunc is invoked when a write diverges from the frozen baseline.
// It receives the exact content that was just written. An error returned
// by the callback propagates to the caller of SetContent unchanged.
type ChangeFunc func(newContent []byte) error

// Watcher observes writes to a tracked entity and compares each one
// against the checksum captured when Watch was called.
//
// A watcher starts unarmed: writes pass through unchecked until Watch
// captures a baseline. Once armed, the baseline never moves — every later
// write is compared against the content as it was at freeze time, so a
// write that diverges and a later write that diverges differently each
// trigger the callback.
//
// Watchers are not safe for concurrent use. They are meant for sequential
// pipelines where one phase mutates one file at a time.
type Watcher struct {
	entity   TrackedEntity
	hashFunc HashFunc
	baseline []byte // nil until Watch captures a checksum
	onChange ChangeFunc
}

// New creates an unarmed watcher for the given entity.
// It uses the default hash function (xxHash) if none is provided.
// The default callback fails with a ChangeAfterFreezeError naming the
// entity; use SetCallback or WithCallback to react differently.
func New(entity TrackedEntity, options ...Option) *Watcher {
	w := &Watcher{
		entity:   entity,
		hashFunc: defaultHashFunc,
		onChange: failOnChange(entity.Name()),
	}

	// Apply options
	for _, option := range options {
		option(w)
	}

	return w
}

// SetCallback replaces the change callback. It may be called at any time,
// before or after Watch.
func (w *Watcher) SetCallback(fn ChangeFunc) {
	w.onChange = fn
}

// Armed reports whether a baseline checksum has been captured.
func (w *Watcher) Armed() bool {
	return w.baseline != nil
}

// Watch captures a checksum of the entity's current content and arms the
// watcher. Calling Watch on an armed watcher is a no-op: the baseline is
// never reset to a later value.
func (w *Watcher) Watch() error {
	if w.baseline != nil {
		return nil
	}

	content, err := w.entity.Content()
	if err != nil {
		return fmt.Errorf("failed to read content of %s: %w", w.entity.Name(), err)
	}

	sum, err := checksum(w.hashFunc(), content)
	if err != nil {
		return fmt.Errorf("failed to checksum content of %s: %w", w.entity.Name(), err)
	}

	w.baseline = sum
	return nil
}

// SetContent commits content to the entity and, if the watcher is armed,
// compares the written content against the baseline. On divergence the
// callback is invoked synchronously with the committed content and its
// error, if any, is returned. The baseline is not updated by a divergent
// write.
//
// The committed content is returned so the watcher can stand in for the
// entity's own setter. The commit happens before the check: even when the
// callback fails, the entity already holds the new content.
func (w *Watcher) SetContent(content []byte) ([]byte, error) {
	if err := w.entity.SetContent(content); err != nil {
		return nil, fmt.Errorf("failed to write content of %s: %w", w.entity.Name(), err)
	}

	if w.baseline == nil {
		return content, nil
	}

	sum, err := checksum(w.hashFunc(), content)
	if err != nil {
		return content, fmt.Errorf("failed to checksum content of %s: %w", w.entity.Name(), err)
	}

	if !bytes.Equal(sum, w.baseline) {
		if err := w.onChange(content); err != nil {
			return content, err
		}
	}

	return content, nil
}

func defaultHashFunc() hash.Hash {
	return xxhash.New()
}

// failOnChange is the default callback: any post-freeze divergence is
// fatal to the caller.
func failOnChange(name string) ChangeFunc {
	return func([]byte) error {
		return &ChangeAfterFreezeError{Name: name}
	}
}
