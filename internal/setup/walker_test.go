package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/dir-grep/internal/walker"
)

func noInfo(string, ...interface{}) {}

func TestConfigureWalker_Defaults(t *testing.T) {
	matcher, opts, err := ConfigureWalker(WalkerConfig{RootDir: t.TempDir()}, noInfo)
	require.NoError(t, err)

	assert.Nil(t, matcher)
	assert.Empty(t, opts)
}

func TestConfigureWalker_AppliesOptions(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "small.txt"), []byte("ok"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.txt"), make([]byte, 64), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skip.log"), []byte("log"), 0o644))

	var messages []string
	matcher, opts, err := ConfigureWalker(WalkerConfig{
		RootDir:     root,
		MaxFileSize: 16,
		CustomRules: []string{"*.log"},
	}, func(format string, args ...interface{}) {
		messages = append(messages, format)
	})
	require.NoError(t, err)
	require.NotNil(t, matcher)
	assert.NotEmpty(t, messages)

	var visited []string
	_, err = walker.Walk(root, func(path string) error {
		visited = append(visited, filepath.Base(path))
		return nil
	}, opts...)
	require.NoError(t, err)

	assert.Equal(t, []string{"small.txt"}, visited)
}
