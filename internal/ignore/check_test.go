package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnore_DefaultIgnoresNothing(t *testing.T) {
	m, err := New(t.TempDir())
	require.NoError(t, err)

	assert.False(t, m.Active())
	assert.False(t, m.ShouldIgnore(".git", true))
	assert.False(t, m.ShouldIgnore(".env", false))
	assert.False(t, m.ShouldIgnore("src/main.go", false))
}

func TestShouldIgnore_Hidden(t *testing.T) {
	m, err := New(t.TempDir(), WithHiddenIgnore(true))
	require.NoError(t, err)

	assert.True(t, m.Active())
	assert.True(t, m.ShouldIgnore(".env", false))
	assert.True(t, m.ShouldIgnore(".cache", true))
	assert.True(t, m.ShouldIgnore(filepath.Join(".cache", "x.txt"), false))
	assert.False(t, m.ShouldIgnore("visible.txt", false))
	assert.False(t, m.ShouldIgnore(".", true))
}

func TestShouldIgnore_GitDir(t *testing.T) {
	m, err := New(t.TempDir(), WithGitIgnore(true))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore(".git", true))
	assert.True(t, m.ShouldIgnore(filepath.Join(".git", "config"), false))
	assert.False(t, m.ShouldIgnore(".git", false), "a file named .git is not a git dir")
	assert.False(t, m.ShouldIgnore(".gitignore", false))
}

func TestShouldIgnore_CustomRules(t *testing.T) {
	m, err := New(t.TempDir(), WithCustomRules([]string{"*.log", " ", "!keep.log"}))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("app.log", false))
	assert.True(t, m.ShouldIgnore(filepath.Join("src", "app.log"), false))
	assert.False(t, m.ShouldIgnore("keep.log", false))
	assert.False(t, m.ShouldIgnore("app.txt", false))
}

func TestShouldIgnore_GitignoreFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.tmp\n"), 0o644))

	m, err := New(root, WithGitignoreFiles(true))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("scratch.tmp", false))
	assert.False(t, m.ShouldIgnore("notes.txt", false))
}

func TestShouldIgnore_NilMatcher(t *testing.T) {
	var m *IgnoreMatcher

	assert.False(t, m.Active())
	assert.False(t, m.ShouldIgnore(".git", true))
}

func TestNewFromConfig(t *testing.T) {
	m, err := NewFromConfig(Config{
		RootDir:      t.TempDir(),
		IgnoreHidden: true,
		CustomRules:  []string{"vendor/"},
	})
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore(".hidden", false))
	assert.True(t, m.ShouldIgnore("vendor", true))
}
