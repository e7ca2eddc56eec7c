// Package ignore provides gitignore-style exclusion on top of the name filters
package ignore

import (
	"github.com/bethropolis/dir-grep/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreMatcher determines whether a file or directory should be left out of a search
type IgnoreMatcher struct {
	// Rules loaded from .gitignore files below rootDir
	repoIgnore gitignore.GitIgnore
	// Rules passed on the command line, rooted at rootDir
	customIgnore gitignore.GitIgnore

	// Configuration flags
	rootDir        string
	ignoreHidden   bool
	ignoreGit      bool
	useGitignore   bool
	customPatterns []string
	logger         utils.Logger
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir      string
	IgnoreHidden bool
	IgnoreGit    bool
	UseGitignore bool
	CustomRules  []string
	Logger       utils.Logger
}
