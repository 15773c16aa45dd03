// Package history keeps a bounded linear undo/redo history of label snapshots.
package history

import (
	"slices"
	"time"

	"go.viam.com/pclabel/pointcloud"
)

// DefaultDepth is the number of snapshots kept when no depth is given.
const DefaultDepth = 20

// Store is the label array the history snapshots and restores.
type Store interface {
	// Labels returns a copy of the current labels.
	Labels() []pointcloud.Label
	// ApplyLabels replaces every label and resyncs the display of each point whose label changed.
	ApplyLabels(labels []pointcloud.Label) int
}

type snapshot struct {
	labels  []pointcloud.Label
	savedAt time.Time
}

// Stack is a linear history with a single cursor. Saving after an undo drops every snapshot past
// the cursor, and saving past the depth evicts the oldest snapshot.
//
// Stack is not safe for concurrent use.
type Stack struct {
	store     Store
	snapshots []snapshot
	cursor    int

	maxEntries int
}

// New returns a stack holding one snapshot of store's current labels, so that undoing the first
// edit returns to the starting state. depth <= 0 uses DefaultDepth.
func New(depth int, store Store) *Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}
	s := &Stack{store: store, maxEntries: depth, cursor: -1}
	s.Save()
	return s
}

// Save appends a copy of the store's labels and moves the cursor to it.
func (s *Stack) Save() {
	if s.cursor < len(s.snapshots)-1 {
		clear(s.snapshots[s.cursor+1:])
		s.snapshots = s.snapshots[:s.cursor+1]
	}
	s.snapshots = append(s.snapshots, snapshot{labels: s.store.Labels(), savedAt: time.Now()})

	if excess := len(s.snapshots) - s.maxEntries; excess > 0 {
		clear(s.snapshots[:excess])
		s.snapshots = slices.Delete(s.snapshots, 0, excess)
	}
	s.cursor = len(s.snapshots) - 1
}

// Undo restores the previous snapshot. It returns false and does nothing at the oldest snapshot.
func (s *Stack) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	s.cursor--
	s.apply()
	return true
}

// Redo restores the next snapshot. It returns false and does nothing at the newest snapshot.
func (s *Stack) Redo() bool {
	if !s.CanRedo() {
		return false
	}
	s.cursor++
	s.apply()
	return true
}

// CanUndo returns true if undo is available.
func (s *Stack) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo returns true if redo is available.
func (s *Stack) CanRedo() bool {
	return s.cursor < len(s.snapshots)-1
}

// Len returns the number of snapshots held.
func (s *Stack) Len() int {
	return len(s.snapshots)
}

// Cursor returns the position of the current snapshot.
func (s *Stack) Cursor() int {
	return s.cursor
}

// Depth returns the maximum number of snapshots kept.
func (s *Stack) Depth() int {
	return s.maxEntries
}

// SavedAt returns when the current snapshot was taken.
func (s *Stack) SavedAt() time.Time {
	return s.snapshots[s.cursor].savedAt
}

// apply hands the store a copy so that later edits cannot reach into the snapshot.
func (s *Stack) apply() {
	s.store.ApplyLabels(slices.Clone(s.snapshots[s.cursor].labels))
}
