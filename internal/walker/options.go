// Package walker handles directory traversal and file admission
package walker

import (
	"context"

	"github.com/bethropolis/dir-grep/internal/ignore"
	"github.com/bethropolis/dir-grep/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger         utils.Logger
	Context        context.Context
	Recursive      bool
	ExcludeDirs    NameMatcher // nil excludes nothing
	IncludeFiles   NameMatcher // nil includes everything
	Ignore         *ignore.IgnoreMatcher
	MaxFileSize    int64 // 0 means no limit
	FollowSymlinks bool
	Tracker        *SkippedTracker
	TrackFiltered  bool
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:    &utils.NoopLogger{},
		Context:   context.Background(),
		Recursive: true,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithContext sets the context checked between entries
func WithContext(ctx context.Context) Option {
	return func(opts *WalkOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}

// WithRecursion controls descending into subdirectories of the root
func WithRecursion(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.Recursive = enabled
	}
}

// WithExcludeDirs skips every directory whose base name m matches,
// together with its whole subtree
func WithExcludeDirs(m NameMatcher) Option {
	return func(opts *WalkOptions) {
		opts.ExcludeDirs = m
	}
}

// WithIncludeFiles admits only files whose base name m matches
func WithIncludeFiles(m NameMatcher) Option {
	return func(opts *WalkOptions) {
		opts.IncludeFiles = m
	}
}

// WithIgnoreMatcher applies gitignore-style rules relative to the root
func WithIgnoreMatcher(m *ignore.IgnoreMatcher) Option {
	return func(opts *WalkOptions) {
		opts.Ignore = m
	}
}

// WithMaxFileSize sets the maximum file size to admit in bytes
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		opts.MaxFileSize = maxBytes
	}
}

// WithFollowSymlinks descends into symlinked directories, guarding against cycles
func WithFollowSymlinks(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.FollowSymlinks = enabled
	}
}

// WithTracker records skipped items into t instead of a private tracker
func WithTracker(t *SkippedTracker) Option {
	return func(opts *WalkOptions) {
		opts.Tracker = t
	}
}

// WithTrackFiltered also records files rejected by the include matcher
func WithTrackFiltered(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.TrackFiltered = enabled
	}
}
