// Package setup turns command-line settings into search components
package setup

import (
	"fmt"

	"github.com/bethropolis/dir-grep/internal/ignore"
	"github.com/bethropolis/dir-grep/internal/utils"
	"github.com/bethropolis/dir-grep/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds the walk settings that sit beside the core search parameters
type WalkerConfig struct {
	RootDir        string
	MaxFileSize    int64 // bytes, 0 = no limit
	FollowSymlinks bool
	UseGitignore   bool
	IgnoreHidden   bool
	IgnoreGit      bool
	CustomRules    []string
	TrackFiltered  bool
	Logger         utils.Logger
}

// ConfigureWalker sets up an ignore matcher and walker options based on the config.
// The matcher is nil when no ignore layer was requested.
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (
	*ignore.IgnoreMatcher,
	[]walker.Option,
	error,
) {
	var walkOptions []walker.Option

	if len(cfg.CustomRules) > 0 {
		infoLog("Using custom ignore patterns: %v", cfg.CustomRules)
	}
	if cfg.UseGitignore {
		infoLog("Honoring .gitignore files below %s.", cfg.RootDir)
	}
	if cfg.IgnoreHidden {
		infoLog("Ignoring hidden files/directories (starting with '.').")
	}

	matcher, err := ignore.NewFromConfig(ignore.Config{
		RootDir:      cfg.RootDir,
		IgnoreHidden: cfg.IgnoreHidden,
		IgnoreGit:    cfg.IgnoreGit,
		UseGitignore: cfg.UseGitignore,
		CustomRules:  cfg.CustomRules,
		Logger:       cfg.Logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}
	if matcher.Active() {
		walkOptions = append(walkOptions, walker.WithIgnoreMatcher(matcher))
	} else {
		matcher = nil
	}

	if cfg.MaxFileSize > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFileSize(cfg.MaxFileSize))
		infoLog("Ignoring files larger than %d bytes.", cfg.MaxFileSize)
	}

	if cfg.FollowSymlinks {
		walkOptions = append(walkOptions, walker.WithFollowSymlinks(true))
		infoLog("Following symlinked directories.")
	}

	if cfg.TrackFiltered {
		walkOptions = append(walkOptions, walker.WithTrackFiltered(true))
	}

	return matcher, walkOptions, nil
}
