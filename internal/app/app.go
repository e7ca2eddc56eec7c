package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bethropolis/dir-grep/internal/config"
	"github.com/bethropolis/dir-grep/internal/grep"
	"github.com/bethropolis/dir-grep/internal/logger"
	"github.com/bethropolis/dir-grep/internal/printer"
	"github.com/bethropolis/dir-grep/internal/setup"
	"github.com/bethropolis/dir-grep/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg       *config.Config
	log       *logger.Logger
	Output    io.Writer
	ErrOutput io.Writer
	closer    io.Closer
}

// New creates a new App writing matches to stdout (or the configured output
// file) and log lines to stderr
func New(cfg *config.Config, stdout, stderr io.Writer) (*App, error) {
	// Configure color globally
	color.NoColor = !cfg.UseColors && !cfg.ColorOutput

	a := &App{
		cfg:       cfg,
		Output:    stdout,
		ErrOutput: stderr,
	}

	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		a.Output = file
		a.closer = file
	}

	a.log = logger.New(stderr, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		a.log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		a.log.WithLevel(logger.LevelWarn)
	}

	return a, nil
}

// Close releases the output file, if one was opened
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// Run executes one search
func (a *App) Run(ctx context.Context) error {
	startTime := time.Now()

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	infoLog("Search string:     %s", a.cfg.SearchString)
	infoLog("Start directory:   %s", a.cfg.RootDir)
	infoLog("File filter:       %s", strings.Join(a.cfg.FilePatterns, config.ListSeparator))
	infoLog("Exclude dirs:      %s", strings.Join(a.cfg.ExcludePatterns, config.ListSeparator))

	// --- Directory validation ---
	dirInfo, err := os.Stat(a.cfg.RootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("start directory '%s' not found", a.cfg.RootDir)
		}
		return fmt.Errorf("could not access start directory '%s': %w", a.cfg.RootDir, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("specified path '%s' is not a directory", a.cfg.RootDir)
	}

	_, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:        a.cfg.RootDir,
		MaxFileSize:    a.cfg.MaxFileSizeBytes(),
		FollowSymlinks: a.cfg.FollowSymlinks,
		UseGitignore:   a.cfg.UseGitignore,
		IgnoreHidden:   a.cfg.IgnoreHidden,
		IgnoreGit:      a.cfg.IgnoreGit,
		CustomRules:    a.cfg.CustomRules,
		TrackFiltered:  a.cfg.ShowSkipped,
		Logger:         a.log,
	}, infoLog)
	if err != nil {
		return err
	}

	p := printer.New().
		WithOutput(a.Output).
		WithColors(a.cfg.ColorOutput).
		WithJSON(a.cfg.JSONOutput)

	engine, err := grep.New(grep.Config{
		StartDirectory:        a.cfg.RootDir,
		FilePatterns:          a.cfg.FilePatterns,
		RecurseSubdirectories: !a.cfg.NoRecurse,
		SearchExpression:      a.cfg.SearchString,
		ExcludeDirPatterns:    a.cfg.ExcludePatterns,
	},
		grep.WithLogger(a.log),
		grep.WithPrinter(p),
		grep.WithWalkOptions(walkOptions...),
		grep.WithMatchTimeout(a.cfg.MatchTimeout),
	)
	if err != nil {
		return err
	}

	result, err := engine.StartSearch(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("timeout of %v reached: %w", a.cfg.Timeout, err)
		}
		return err
	}

	summary.DisplayResults(a.log, result.Matches, len(result.Skipped), time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, result.Skipped, a.ErrOutput, a.cfg.Quiet)
	}

	return nil
}
