// Package grep searches a directory tree for text files whose contents match
// a regular expression.
//
// The expression uses the .NET-compatible dialect of regexp2 and is passed
// through unchanged. File and directory filters are wildcard patterns (see
// package glob) matched against base names. Each matching file is printed as
// soon as it is found, followed by a summary line once the walk completes.
package grep

import (
	"context"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/bethropolis/dir-grep/internal/glob"
	"github.com/bethropolis/dir-grep/internal/printer"
	"github.com/bethropolis/dir-grep/internal/summary"
	"github.com/bethropolis/dir-grep/internal/textfile"
	"github.com/bethropolis/dir-grep/internal/utils"
	"github.com/bethropolis/dir-grep/internal/walker"
)

// Engine runs searches for one Config. Its compiled state is read-only, so
// StartSearch may be called repeatedly.
type Engine struct {
	cfg     Config
	search  *regexp2.Regexp
	include *glob.Matcher
	exclude *glob.Matcher // nil when no exclude patterns were given

	printer      *printer.Printer
	log          utils.Logger
	walkOpts     []walker.Option
	matchTimeout time.Duration
}

// Result is the outcome of one StartSearch call.
type Result struct {
	Matches int
	Skipped []walker.SkippedItem
}

// session is the mutable state of a single run.
type session struct {
	matchCounter int
	tracker      *walker.SkippedTracker
}

// New compiles the search expression and the name filters of cfg.
// It returns a *ConfigError when any of them is invalid.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.StartDirectory == "" {
		return nil, &ConfigError{Field: "start directory", Value: cfg.StartDirectory}
	}

	search, err := regexp2.Compile(cfg.SearchExpression, regexp2.None)
	if err != nil {
		return nil, &ConfigError{Field: "search expression", Value: cfg.SearchExpression, Err: err}
	}

	include, err := glob.Compile(cfg.FilePatterns)
	if err != nil {
		return nil, &ConfigError{Field: "file pattern", Value: fmt.Sprint(cfg.FilePatterns), Err: err}
	}

	exclude, err := glob.Compile(cfg.ExcludeDirPatterns)
	if err != nil {
		return nil, &ConfigError{Field: "exclude pattern", Value: fmt.Sprint(cfg.ExcludeDirPatterns), Err: err}
	}
	// An empty exclude list excludes nothing rather than everything.
	if exclude.Empty() {
		exclude = nil
	}

	e := &Engine{
		cfg:     cfg,
		search:  search,
		include: include,
		exclude: exclude,
		printer: printer.New(),
		log:     utils.NoopLogger{},
	}
	e.cfg.FilePatterns = append([]string(nil), cfg.FilePatterns...)
	e.cfg.ExcludeDirPatterns = append([]string(nil), cfg.ExcludeDirPatterns...)

	for _, opt := range opts {
		opt(e)
	}
	if e.matchTimeout > 0 {
		e.search.MatchTimeout = e.matchTimeout
	}

	return e, nil
}

// StartSearch walks the tree, prints every file whose decoded contents
// contain a match, and then prints the summary line. Unreadable and binary
// files are skipped without aborting the walk. An error is returned only if
// the start directory is unusable, ctx is done, or output cannot be written.
func (e *Engine) StartSearch(ctx context.Context) (Result, error) {
	s := &session{tracker: walker.NewSkippedTracker(16)}

	opts := append([]walker.Option(nil), e.walkOpts...)
	opts = append(opts,
		walker.WithLogger(e.log),
		walker.WithContext(ctx),
		walker.WithRecursion(e.cfg.RecurseSubdirectories),
		walker.WithIncludeFiles(e.include),
		walker.WithTracker(s.tracker),
	)
	if e.exclude != nil {
		opts = append(opts, walker.WithExcludeDirs(e.exclude))
	}

	e.log.Debug("grep: searching %s for %q (files=%v, exclude=%v, recurse=%v)",
		e.cfg.StartDirectory, e.cfg.SearchExpression, e.cfg.FilePatterns,
		e.cfg.ExcludeDirPatterns, e.cfg.RecurseSubdirectories)

	skipped, err := walker.Walk(e.cfg.StartDirectory, func(path string) error {
		return e.searchFile(s, path)
	}, opts...)

	result := Result{Matches: s.matchCounter, Skipped: skipped}
	if err != nil {
		return result, fmt.Errorf("grep: search aborted: %w", err)
	}

	line := summary.Line(e.cfg.SearchExpression, s.matchCounter)
	if !e.printer.Finalize(line) {
		e.log.Info("%s", line)
	}
	if err := e.printer.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// searchFile classifies, decodes and matches one admitted file. Any I/O
// problem turns the file into a non-match.
func (e *Engine) searchFile(s *session, path string) error {
	verdict, err := textfile.Classify(path)
	if err != nil {
		e.log.Debug("grep: skipping %q: %v", path, err)
		s.tracker.Track(path, walker.ReasonSkippedReadError, false)
		return nil
	}
	if !verdict.IsText {
		e.log.Debug("grep: skipping binary file %q", path)
		s.tracker.Track(path, walker.ReasonSkippedBinary, false)
		return nil
	}

	content, err := textfile.ReadText(path, verdict.Encoding)
	if err != nil {
		e.log.Debug("grep: skipping %q: %v", path, err)
		s.tracker.Track(path, walker.ReasonSkippedReadError, false)
		return nil
	}

	matched, err := e.search.MatchString(content)
	if err != nil {
		e.log.Warn("grep: matching %q failed: %v", path, err)
		return nil
	}
	if !matched {
		return nil
	}

	s.matchCounter++
	e.printer.PrintMatch(path, verdict.Encoding)
	return e.printer.Err()
}
