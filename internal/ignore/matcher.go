package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-grep/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates and initializes an IgnoreMatcher
func New(rootDir string, opts ...Option) (*IgnoreMatcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &IgnoreMatcher{
		rootDir: absRootDir,
		logger:  &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// init loads the gitignore rule sets that were asked for
func (m *IgnoreMatcher) init() error {
	m.logger.Debug("ignore.New: root=%s hidden=%v git=%v gitignore=%v custom=%d",
		m.rootDir, m.ignoreHidden, m.ignoreGit, m.useGitignore, len(m.customPatterns))

	if m.useGitignore {
		repoMatcher, err := gitignore.NewRepository(m.rootDir)
		if err != nil {
			if repoMatcher == nil {
				m.logger.Warn("ignore.New: No .gitignore rules could be loaded from '%s': %v", m.rootDir, err)
			} else {
				return fmt.Errorf("ignore: failed to load repository ignores: %w", err)
			}
		}
		m.repoIgnore = repoMatcher
	}

	if rules := cleanRules(m.customPatterns); len(rules) > 0 {
		var parseErr error
		m.customIgnore = gitignore.New(strings.NewReader(strings.Join(rules, "\n")), m.rootDir,
			func(e gitignore.Error) bool {
				parseErr = e
				return false
			})
		if parseErr != nil {
			return fmt.Errorf("ignore: invalid custom rule: %w", parseErr)
		}
		m.logger.Debug("ignore.New: Loaded %d custom rules", len(rules))
	}

	return nil
}

// cleanRules trims the rules and drops empty ones
func cleanRules(patterns []string) []string {
	var rules []string
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			rules = append(rules, p)
		}
	}
	return rules
}
