package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := New(flags)
	require.NoError(t, flags.Parse(args))
	return c
}

func TestNew_Defaults(t *testing.T) {
	c := parse(t)
	require.NoError(t, c.Finalize())

	abs, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, abs, c.RootDir)
	assert.Equal(t, []string{"*"}, c.FilePatterns)
	assert.Nil(t, c.ExcludePatterns)
	assert.False(t, c.NoRecurse)
	assert.Equal(t, int64(0), c.MaxFileSizeBytes())
	assert.Equal(t, "1.0.0", c.Version)
}

func TestNew_Flags(t *testing.T) {
	dir := t.TempDir()
	c := parse(t,
		"-s", "public`s+static",
		"-d", dir,
		"-f", "*.cs; *.htm*",
		"-e", "bin;obj;.*",
		"--no-recurse",
		"--max-size", "2",
		"--timeout", "5s",
		"--match-timeout", "250ms",
		"--ignore", "vendor/, *.log",
		"--no-color",
		"--json",
	)
	require.NoError(t, c.Finalize())

	assert.Equal(t, `public\s+static`, c.SearchString)
	assert.Equal(t, dir, c.RootDir)
	assert.Equal(t, []string{"*.cs", "*.htm*"}, c.FilePatterns)
	assert.Equal(t, []string{"bin", "obj", ".*"}, c.ExcludePatterns)
	assert.Equal(t, []string{"vendor/", "*.log"}, c.CustomRules)
	assert.True(t, c.NoRecurse)
	assert.Equal(t, int64(2*1024*1024), c.MaxFileSizeBytes())
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Equal(t, 250*time.Millisecond, c.MatchTimeout)
	assert.False(t, c.UseColors)
	assert.False(t, c.ColorOutput)
	assert.True(t, c.JSONOutput)
}

func TestFinalize_NegativeSize(t *testing.T) {
	c := parse(t, "--max-size=-1")
	assert.Error(t, c.Finalize())
}

func TestFinalize_EmptyFilterMatchesAll(t *testing.T) {
	c := parse(t, "-f", "")
	require.NoError(t, c.Finalize())
	assert.Nil(t, c.FilePatterns)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList("", ";"))
	assert.Nil(t, SplitList(" ; ;", ";"))
	assert.Equal(t, []string{"a", "b c"}, SplitList("a; b c ;", ";"))
}

func TestExpandBackticks(t *testing.T) {
	assert.Equal(t, `\t\tint x;`, ExpandBackticks("`t`tint x;"))
	assert.Equal(t, "plain", ExpandBackticks("plain"))
}
