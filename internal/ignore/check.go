package ignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// ShouldIgnore checks if a path relative to the root should be ignored
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil {
		return false
	}

	if relativePath == "" || relativePath == "." {
		return false // Never ignore the root itself
	}

	if m.ignoreHidden && isHiddenPath(relativePath) {
		m.logger.Debug("ignore.ShouldIgnore: Ignored %q (hidden rule)", relativePath)
		return true
	}

	if m.ignoreGit && isPathInGitDir(relativePath, isDir) {
		m.logger.Debug("ignore.ShouldIgnore: Ignored %q (.git rule)", relativePath)
		return true
	}

	unixPath := filepath.ToSlash(relativePath)
	for _, rules := range []gitignore.GitIgnore{m.customIgnore, m.repoIgnore} {
		if rules == nil {
			continue
		}
		if ignored, decided := m.check(rules, unixPath, isDir); decided {
			return ignored
		}
	}

	return false
}

// check asks one rule set about a path. decided is false when no rule matched.
func (m *IgnoreMatcher) check(rules gitignore.GitIgnore, unixPath string, isDir bool) (ignored, decided bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", unixPath, r)
			ignored, decided = false, false
		}
	}()

	match := rules.Relative(unixPath, isDir)
	if match == nil {
		return false, false
	}
	if match.Include() {
		m.logger.Debug("ignore.ShouldIgnore: Path %q re-included by %s", unixPath, match)
		return false, true
	}
	m.logger.Debug("ignore.ShouldIgnore: Path %q ignored by %s", unixPath, match)
	return match.Ignore(), true
}

// isHiddenPath reports whether any component of the path starts with a dot
func isHiddenPath(relativePath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relativePath), "/") {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// isPathInGitDir checks if a path is inside a .git directory
func isPathInGitDir(relativePath string, isDir bool) bool {
	parts := strings.Split(filepath.ToSlash(relativePath), "/")
	for i, part := range parts {
		if part == ".git" {
			// .git as a directory component, not a file named .git
			if isDir || i < len(parts)-1 {
				return true
			}
		}
	}
	return false
}
