/*
	Package freezeguard detects content mutations that happen after a file has been frozen.

It is built for sequential, multi-phase build pipelines: once a phase has
consumed a file's content and committed it elsewhere, a later phase that
silently rewrites that file introduces an ordering bug. freezeguard catches
this class of bug by fingerprinting content at freeze time and checking
every later write against that fingerprint.

# Overview

A Watcher wraps a content-bearing entity. Calling Watch captures a checksum
of the current content (the baseline) and arms the watcher. From then on,
every write routed through the watcher is checksummed and compared against
the baseline; on divergence a registered callback is invoked with the new
content. The baseline never moves, so writing "B" over a frozen "A" fires,
writing "A" back does not, and writing "C" afterwards fires again.

The default callback fails with a ChangeAfterFreezeError naming the entity.
The mechanism exists to catch bugs, so divergence is fatal unless the
caller explicitly decides otherwise.

# Basic Usage

Arming a watcher over an in-memory buffer:

	entity := freezeguard.NewBuffer("lib/Foo.pm", []byte("package Foo;\n1;\n"))
	w := freezeguard.New(entity)

	if err := w.Watch(); err != nil {
	    log.Fatalf("Failed to arm watcher: %v", err)
	}

	// Later, some phase rewrites the content through the watcher:
	_, err := w.SetContent([]byte("package Foo;\n2;\n"))

	var changed *freezeguard.ChangeAfterFreezeError
	if errors.As(err, &changed) {
	    log.Fatalf("Ordering bug: %s was mutated after freeze", changed.Name)
	}

Downgrading divergence to a log entry:

	w.SetCallback(func(newContent []byte) error {
	    log.Printf("warning: content rewritten after freeze (%d bytes)", len(newContent))
	    return nil
	})

# Entities

Two entity implementations ship with the package:

Buffer - in-memory content, never fails:

	entity := freezeguard.NewBuffer("config.json", data)

File - content stored on a filesystem (afero, so in-memory filesystems work
for tests):

	entity := freezeguard.File{Path: "build/manifest.json", Fs: memFs}

Any type implementing TrackedEntity can be watched. Writes must be routed
through Watcher.SetContent; the watcher commits to the entity first and
checks afterwards, so the entity's setter contract is preserved even when
the callback fails.

# Freezing many files

A Registry tracks watchers by entity name so a phase boundary can freeze
every file it produced in one call:

	reg := freezeguard.NewRegistry()
	for _, f := range files {
	    reg.Track(f)
	}
	if err := reg.WatchAll(); err != nil {
	    log.Fatalf("Failed to freeze outputs: %v", err)
	}

WatchAll collects all arming failures instead of stopping at the first one.

# Hashing

xxHash64 is used by default for its speed. The checksum is only ever
compared for equality inside the process, so any deterministic hash of at
least 64 bits is acceptable:

	w := freezeguard.New(entity, freezeguard.WithHashFunc(func() hash.Hash {
	    return sha256.New()
	}))

# Concurrency

Watchers and registries are not safe for concurrent use. The design target
is a single-pass pipeline where one file is mutated by one phase at a time;
all operations are synchronous and run on the caller's goroutine, including
the callback.
*/
package freezeguard
