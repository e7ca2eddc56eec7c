// Package walker handles directory traversal and file admission
package walker

import (
	"sync"
)

// VisitFunc is called once for every admitted file, in traversal order.
// path is the directory path joined with the name from the listing.
// Returning an error stops the walk and Walk returns that error.
type VisitFunc func(path string) error

// NameMatcher decides on a bare file or directory name.
// *glob.Matcher satisfies it.
type NameMatcher interface {
	Match(name string) bool
}

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonExcludedDir       SkippedReason = "Excluded (Directory Pattern)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore/Custom Rule)"
	ReasonFilteredName      SkippedReason = "Filtered (File Pattern Mismatch)"
	ReasonSkippedSizeLimit  SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedSymlinkDir SkippedReason = "Skipped (Symlinked Directory)"
	ReasonSkippedCycle      SkippedReason = "Skipped (Symlink Cycle)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedListError  SkippedReason = "Skipped (Listing Error)"
	ReasonSkippedInfoError  SkippedReason = "Skipped (File Info Error)"
	ReasonSkippedReadError  SkippedReason = "Skipped (Read Error)"
	ReasonSkippedBinary     SkippedReason = "Skipped (Binary File)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker is a struct to track skipped items
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return append([]SkippedItem(nil), st.items...)
}

// Len returns the number of tracked items
func (st *SkippedTracker) Len() int {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return len(st.items)
}
