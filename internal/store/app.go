// Package store holds the application state shared by display components:
// the latest chain head and the latest blocks list.
package store

import (
	"sync"

	"github.com/Mohsinsiddi/tiascan/internal/explorer"
)

// App is the application store. Create one at startup with New and pass it
// to whoever reads or writes it. Both fields are replaced wholesale; the
// last write wins.
type App struct {
	mu           sync.RWMutex
	head         *explorer.Head
	latestBlocks []explorer.Block
}

// Snapshot is a point-in-time copy of the store.
type Snapshot struct {
	Head         *explorer.Head
	LatestBlocks []explorer.Block
}

// New returns an empty store: no head, no blocks.
func New() *App {
	return &App{latestBlocks: []explorer.Block{}}
}

// Head returns the latest head, nil when none has been stored.
func (a *App) Head() *explorer.Head {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.head
}

// SetHead overwrites the stored head.
func (a *App) SetHead(h *explorer.Head) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.head = h
}

// LatestBlocks returns the stored blocks in the order they were set.
func (a *App) LatestBlocks() []explorer.Block {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latestBlocks
}

// SetLatestBlocks replaces the stored blocks. A nil slice stores an empty list.
func (a *App) SetLatestBlocks(blocks []explorer.Block) {
	if blocks == nil {
		blocks = []explorer.Block{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.latestBlocks = blocks
}

// Snapshot copies both fields so the caller can render without holding a lock.
func (a *App) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s := Snapshot{LatestBlocks: make([]explorer.Block, len(a.latestBlocks))}
	copy(s.LatestBlocks, a.latestBlocks)
	if a.head != nil {
		h := *a.head
		s.Head = &h
	}
	return s
}
