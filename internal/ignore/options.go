package ignore

import "github.com/bethropolis/dir-grep/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithHiddenIgnore skips entries whose name starts with a dot
func WithHiddenIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreHidden = ignore
	}
}

// WithGitIgnore skips .git directories and everything inside them
func WithGitIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreGit = ignore
	}
}

// WithGitignoreFiles loads .gitignore files found below the root
func WithGitignoreFiles(enabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.useGitignore = enabled
	}
}

// WithCustomRules adds gitignore-syntax rules anchored at the root
func WithCustomRules(patterns []string) Option {
	return func(m *IgnoreMatcher) {
		m.customPatterns = patterns
	}
}

// WithLogger sets the logger used while loading rules
func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
