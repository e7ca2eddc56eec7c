// Package ignore provides gitignore-style exclusion on top of the name filters
//
// The search itself only knows wildcard name patterns. This package adds the
// optional layers a user may switch on: .gitignore files, custom rules in
// gitignore syntax, hidden entries and .git directories. Every layer is off
// unless requested, so a default matcher ignores nothing.
package ignore

// NewFromConfig creates an IgnoreMatcher from a Config struct
func NewFromConfig(cfg Config) (*IgnoreMatcher, error) {
	options := []Option{
		WithHiddenIgnore(cfg.IgnoreHidden),
		WithGitIgnore(cfg.IgnoreGit),
		WithGitignoreFiles(cfg.UseGitignore),
	}

	if len(cfg.CustomRules) > 0 {
		options = append(options, WithCustomRules(cfg.CustomRules))
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	return New(cfg.RootDir, options...)
}

// Active reports whether the matcher has any rule switched on
func (m *IgnoreMatcher) Active() bool {
	if m == nil {
		return false
	}
	return m.ignoreHidden || m.ignoreGit || m.repoIgnore != nil || m.customIgnore != nil
}
