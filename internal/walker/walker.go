// Package walker handles directory traversal and file admission
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// walk holds the state of one traversal.
type walk struct {
	root    string
	opts    WalkOptions
	tracker *SkippedTracker
	visit   VisitFunc
	visited map[string]struct{} // real paths of entered dirs, only when following symlinks
}

// Walk traverses the tree rooted at rootDir depth-first, pre-order: the files
// of a directory are visited before any of its subdirectories, both in the
// lexical order returned by os.ReadDir. Every directory, the root included,
// is tested against the exclude matcher by its base name before it is listed.
//
// A directory that cannot be listed is recorded as skipped and the walk goes
// on with its siblings. Walk returns an error only when the root itself is not
// an accessible directory, when the context is done, or when visit fails.
func Walk(rootDir string, visit VisitFunc, opts ...Option) ([]SkippedItem, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	tracker := options.Tracker
	if tracker == nil {
		tracker = NewSkippedTracker(16)
	}

	info, err := os.Stat(rootDir)
	if err != nil {
		return tracker.Items(), fmt.Errorf("walker: cannot access root '%s': %w", rootDir, err)
	}
	if !info.IsDir() {
		return tracker.Items(), fmt.Errorf("walker: root '%s' is not a directory", rootDir)
	}

	w := &walk{
		root:    rootDir,
		opts:    options,
		tracker: tracker,
		visit:   visit,
	}
	if options.FollowSymlinks {
		w.visited = make(map[string]struct{})
	}

	options.Logger.Debug("walker.Walk started. Root: %s, Recursive: %v, FollowSymlinks: %v",
		rootDir, options.Recursive, options.FollowSymlinks)

	err = w.run()

	options.Logger.Debug("Walker: Total walk time: %s (%d skipped)", time.Since(startTime), tracker.Len())
	return tracker.Items(), err
}

// run drains an explicit stack of pending directories so deep trees do not
// grow the goroutine stack.
func (w *walk) run() error {
	stack := []string{w.root}

	for len(stack) > 0 {
		if err := w.opts.Context.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		subdirs, err := w.searchDir(dir)
		if err != nil {
			return err
		}

		// Push in reverse so the first subdirectory is popped first.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return nil
}

// searchDir visits the admitted files of dir and returns the subdirectories
// to descend into.
func (w *walk) searchDir(dir string) ([]string, error) {
	if !w.admitDir(dir) {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		reason := ReasonSkippedListError
		if errors.Is(err, fs.ErrPermission) {
			reason = ReasonSkippedPermError
		}
		w.opts.Logger.Warn("Walker: Cannot list directory %q: %v", dir, err)
		w.tracker.Track(dir, reason, true)
		return nil, nil
	}

	var subdirs []string
	for _, entry := range entries {
		if err := w.opts.Context.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())
		kind, info, err := classifyEntry(path, entry)
		if err != nil {
			w.opts.Logger.Debug("Walker: Cannot stat %q: %v", path, err)
			w.tracker.Track(path, ReasonSkippedInfoError, false)
			continue
		}

		switch kind {
		case kindDir:
			if w.opts.Recursive {
				subdirs = append(subdirs, path)
			}
		case kindSymlinkDir:
			if !w.opts.Recursive {
				continue
			}
			if w.opts.FollowSymlinks {
				subdirs = append(subdirs, path)
			} else {
				w.opts.Logger.Debug("Walker: Not following symlinked directory %q", path)
				w.tracker.Track(path, ReasonSkippedSymlinkDir, true)
			}
		case kindFile:
			if !w.admitFile(path, entry, info) {
				continue
			}
			w.opts.Logger.Debug("Walker: Visiting file %q", path)
			if err := w.visit(path); err != nil {
				return nil, err
			}
		default:
			w.opts.Logger.Debug("Walker: Skipping %q: not a regular file", path)
			w.tracker.Track(path, ReasonSkippedNotRegular, false)
		}
	}

	return subdirs, nil
}

// admitDir applies the exclude matcher, the ignore rules and the cycle guard.
func (w *walk) admitDir(dir string) bool {
	if w.opts.ExcludeDirs != nil && w.opts.ExcludeDirs.Match(filepath.Base(dir)) {
		w.opts.Logger.Debug("Walker: Excluded directory %q", dir)
		w.tracker.Track(dir, ReasonExcludedDir, true)
		return false
	}

	if w.opts.Ignore != nil && w.opts.Ignore.ShouldIgnore(w.rel(dir), true) {
		w.opts.Logger.Debug("Walker: Ignored directory %q by matcher rules", dir)
		w.tracker.Track(dir, ReasonIgnoredRule, true)
		return false
	}

	if w.visited != nil {
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			w.opts.Logger.Warn("Walker: Cannot resolve directory %q: %v", dir, err)
			w.tracker.Track(dir, ReasonSkippedInfoError, true)
			return false
		}
		if _, seen := w.visited[resolved]; seen {
			w.opts.Logger.Debug("Walker: %q resolves to already visited %q", dir, resolved)
			w.tracker.Track(dir, ReasonSkippedCycle, true)
			return false
		}
		w.visited[resolved] = struct{}{}
	}

	return true
}

// rel returns path relative to the root for the ignore rules.
func (w *walk) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}
