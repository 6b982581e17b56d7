package freezeguard

// Option defines a function that configures a Watcher.
type Option func(*Watcher)

// WithHashFunc sets a custom hash function for the watcher.
// The default is xxHash64, which provides excellent performance. Any
// deterministic hash of at least 64 bits works; the sum is only compared
// for equality, never stored or exchanged.
func WithHashFunc(hashFunc HashFunc) Option {
	return func(w *Watcher) {
		w.hashFunc = hashFunc
	}
}

// WithCallback sets the change callback at construction time.
// Equivalent to calling SetCallback on the new watcher.
//
// Example:
//
//	w := freezeguard.New(entity, freezeguard.WithCallback(func(newContent []byte) error {
//	    log.Printf("%s changed after freeze", entity.Name())
//	    return nil
//	}))
func WithCallback(fn ChangeFunc) Option {
	return func(w *Watcher) {
		w.onChange = fn
	}
}
