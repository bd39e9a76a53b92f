// Package cache provides the reference-counted animation cache.
package cache

import (
	"fmt"
	"sync"

	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

// Handle identifies one consumer of a cached animation, typically one
// on-screen viewer. Values must be comparable.
type Handle any

// BuildFunc produces the timeline for an identity on first request.
type BuildFunc func() (*timeline.Timeline, error)

// Cache maps a canonical image identity to its built animation and tracks
// the consumers using each entry. Entry lifetime is purely reference
// counted: an entry and all of its frame buffers are evicted as soon as the
// last consumer detaches. There is no time- or size-based eviction.
//
// A Cache is created explicitly and injected into its users; there is no
// process-wide instance.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  ports.Logger
}

type entry struct {
	// ready is closed once the build finished, successfully or not.
	ready chan struct{}

	tl  *timeline.Timeline
	err error

	consumers map[Handle]struct{}
}

// New creates an empty cache.
func New(logger ports.Logger) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		logger:  logger.WithComponent("cache"),
	}
}

// GetOrBuild returns the timeline for identity, invoking build on first
// request. Requests racing for the same identity share a single build and
// every caller receives the identical timeline instance; no caller observes
// a partially built timeline. A failed build leaves nothing cached, so a
// later request for the same identity retries from scratch.
func (c *Cache) GetOrBuild(identity string, build BuildFunc) (*timeline.Timeline, error) {
	c.mu.Lock()
	if e, ok := c.entries[identity]; ok {
		c.mu.Unlock()
		<-e.ready
		if e.err != nil {
			return nil, e.err
		}
		return e.tl, nil
	}

	e := &entry{
		ready:     make(chan struct{}),
		consumers: make(map[Handle]struct{}),
	}
	c.entries[identity] = e
	c.mu.Unlock()

	tl, err := build()
	if err != nil {
		e.err = fmt.Errorf("build %s: %w", identity, err)
		c.mu.Lock()
		delete(c.entries, identity)
		c.mu.Unlock()
		close(e.ready)
		return nil, e.err
	}

	e.tl = tl
	close(e.ready)
	c.logger.Debug("Built timeline for %s: %d frames", identity, tl.FrameCount())
	return tl, nil
}

// Attach registers a consumer against the entry for identity. Attaching the
// same consumer twice, or attaching to an identity that was never built, is
// a no-op.
func (c *Cache) Attach(identity string, consumer Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[identity]
	if !ok {
		c.logger.Warn("Attach to unknown identity %s", identity)
		return
	}
	e.consumers[consumer] = struct{}{}
}

// Detach removes a consumer from the entry for identity. When the last
// consumer detaches the entry is evicted immediately, releasing all of its
// composited frame buffers.
func (c *Cache) Detach(identity string, consumer Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[identity]
	if !ok {
		return
	}
	delete(e.consumers, consumer)
	if len(e.consumers) == 0 {
		delete(c.entries, identity)
		c.logger.Debug("Evicted %s", identity)
	}
}

// Contains reports whether an entry exists for identity.
func (c *Cache) Contains(identity string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[identity]
	return ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
