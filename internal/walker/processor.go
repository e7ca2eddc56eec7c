// Package walker handles directory traversal and file admission
package walker

import (
	"io/fs"
	"os"
)

type entryKind int

const (
	kindOther entryKind = iota
	kindFile
	kindDir
	kindSymlinkDir
)

// classifyEntry sorts a listing entry. Symlinks are resolved so that a link
// to a regular file is a file; info is only set when a stat was needed.
func classifyEntry(path string, entry fs.DirEntry) (entryKind, fs.FileInfo, error) {
	mode := entry.Type()

	switch {
	case mode.IsDir():
		return kindDir, nil, nil
	case mode.IsRegular():
		return kindFile, nil, nil
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return kindOther, nil, err
		}
		if info.IsDir() {
			return kindSymlinkDir, info, nil
		}
		if info.Mode().IsRegular() {
			return kindFile, info, nil
		}
		return kindOther, info, nil
	default:
		return kindOther, nil, nil
	}
}

// admitFile applies the include matcher, the ignore rules and the size limit.
func (w *walk) admitFile(path string, entry fs.DirEntry, info fs.FileInfo) bool {
	if w.opts.IncludeFiles != nil && !w.opts.IncludeFiles.Match(entry.Name()) {
		if w.opts.TrackFiltered {
			w.tracker.Track(path, ReasonFilteredName, false)
		}
		return false
	}

	if w.opts.Ignore != nil && w.opts.Ignore.ShouldIgnore(w.rel(path), false) {
		w.opts.Logger.Debug("Walker: Ignored file %q by matcher rules", path)
		w.tracker.Track(path, ReasonIgnoredRule, false)
		return false
	}

	if w.opts.MaxFileSize > 0 {
		if info == nil {
			var err error
			if info, err = entry.Info(); err != nil {
				w.opts.Logger.Debug("Walker: Failed to get file info for %q: %v", path, err)
				w.tracker.Track(path, ReasonSkippedInfoError, false)
				return false
			}
		}
		if info.Size() > w.opts.MaxFileSize {
			w.opts.Logger.Debug("Walker: Skipping %q: exceeds size limit (%d > %d bytes)",
				path, info.Size(), w.opts.MaxFileSize)
			w.tracker.Track(path, ReasonSkippedSizeLimit, false)
			return false
		}
	}

	return true
}
