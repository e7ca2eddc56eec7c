package grep

import (
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/dir-grep/internal/printer"
	"github.com/bethropolis/dir-grep/internal/utils"
	"github.com/bethropolis/dir-grep/internal/walker"
)

// Config holds the parameters of one search. It is copied into the Engine
// and never changed afterwards.
type Config struct {
	// StartDirectory is where the walk begins. Callers pass an absolute path.
	StartDirectory string
	// FilePatterns are wildcard patterns for file names; empty matches every file.
	FilePatterns []string
	// RecurseSubdirectories descends below StartDirectory when true.
	RecurseSubdirectories bool
	// SearchExpression is the regular expression looked for in file contents.
	SearchExpression string
	// ExcludeDirPatterns are wildcard patterns for directory names; empty excludes nothing.
	ExcludeDirPatterns []string
}

// ConfigError reports a Config that cannot be searched with.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("grep: invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("grep: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for skipped files and progress messages
func WithLogger(logger utils.Logger) Option {
	return func(e *Engine) {
		e.log = utils.OrNoop(logger)
	}
}

// WithPrinter sets the printer receiving matches and the summary line
func WithPrinter(p *printer.Printer) Option {
	return func(e *Engine) {
		if p != nil {
			e.printer = p
		}
	}
}

// WithOutput writes plain, uncolored output to w
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.printer = printer.New().WithOutput(w).WithColors(false)
	}
}

// WithWalkOptions passes extra options to the directory walker, such as an
// ignore matcher or a size limit
func WithWalkOptions(opts ...walker.Option) Option {
	return func(e *Engine) {
		e.walkOpts = append(e.walkOpts, opts...)
	}
}

// WithMatchTimeout bounds the time spent matching one file. Zero means no limit.
func WithMatchTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.matchTimeout = d
	}
}
