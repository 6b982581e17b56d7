package freezeguard

import (
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Registry holds the watchers for a set of tracked entities, keyed by
// entity name, so a pipeline phase can freeze everything it has consumed
// in one call.
//
// Like Watcher, a Registry is not safe for concurrent use.
type Registry struct {
	watchers map[string]*Watcher
	defaults []Option // options applied to every watcher the registry creates
}

// NewRegistry creates an empty registry. The given options become the
// defaults for every watcher created through Track.
func NewRegistry(options ...Option) *Registry {
	return &Registry{
		watchers: make(map[string]*Watcher),
		defaults: options,
	}
}

// Track returns the watcher for the entity, creating one if its name is
// not tracked yet. Options given here apply after the registry defaults.
// Tracking the same name again returns the existing watcher unchanged.
func (r *Registry) Track(entity TrackedEntity, options ...Option) *Watcher {
	if w, ok := r.watchers[entity.Name()]; ok {
		return w
	}

	opts := make([]Option, 0, len(r.defaults)+len(options))
	opts = append(opts, r.defaults...)
	opts = append(opts, options...)

	w := New(entity, opts...)
	r.watchers[entity.Name()] = w
	return w
}

// Lookup returns the watcher for the given entity name, if tracked.
func (r *Registry) Lookup(name string) (*Watcher, bool) {
	w, ok := r.watchers[name]
	return w, ok
}

// Names returns the tracked entity names in sorted order for deterministic
// iteration.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.watchers))
	for name := range r.watchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WatchAll arms every tracked watcher. Failures are collected rather than
// stopping at the first, so one unreadable entity does not leave the rest
// unarmed.
func (r *Registry) WatchAll() error {
	var result *multierror.Error
	for _, name := range r.Names() {
		if err := r.watchers[name].Watch(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
