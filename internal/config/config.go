package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// ListSeparator separates entries of the file filter and exclude flags
const ListSeparator = ";"

// Config holds all application configuration settings
type Config struct {
	// Search settings
	SearchString   string
	RootDir        string
	FileFilter     string
	ExcludeDirs    string
	NoRecurse      bool
	FollowSymlinks bool
	MaxFileSizeMB  int64
	Timeout        time.Duration
	MatchTimeout   time.Duration

	// Filtering settings
	UseGitignore bool
	IgnoreHidden bool
	IgnoreGit    bool
	CustomIgnore string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool // colored log prefixes on stderr
	ColorOutput bool // highlighted match paths on stdout
	OutputFile  string
	ShowSkipped bool

	// Output format
	JSONOutput bool

	// Version info
	ShowVersion bool
	Version     string

	// Filled in by Finalize
	FilePatterns    []string
	ExcludePatterns []string
	CustomRules     []string
}

// New creates a Config and registers its command-line flags on flags
func New(flags *pflag.FlagSet) *Config {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	flags.StringVarP(&c.SearchString, "search", "s", "", "Regular expression to search for (use ` for \\, e.g. `t for TAB)")
	flags.StringVarP(&c.RootDir, "dir", "d", ".", "Directory to start the search in")
	flags.StringVarP(&c.FileFilter, "filter", "f", "*", "File name patterns, ';'-separated (wildcards * and ?)")
	flags.StringVarP(&c.ExcludeDirs, "exclude", "e", "", "Directory names to skip, ';'-separated (wildcards * and ?)")
	flags.BoolVar(&c.NoRecurse, "no-recurse", false, "Search only the start directory, not its subdirectories")
	flags.BoolVar(&c.FollowSymlinks, "follow-symlinks", false, "Descend into symlinked directories (cycles are skipped)")
	flags.Int64Var(&c.MaxFileSizeMB, "max-size", 0, "Max file size to search in MB (0 = no limit)")
	flags.DurationVar(&c.Timeout, "timeout", 0, "Maximum execution time (e.g., '30s', '5m')")
	flags.DurationVar(&c.MatchTimeout, "match-timeout", 0, "Maximum time spent matching one file (0 = no limit)")
	flags.BoolVar(&c.UseGitignore, "gitignore", false, "Skip paths matched by .gitignore files")
	flags.BoolVar(&c.IgnoreHidden, "hidden", false, "Skip hidden files/directories (starting with '.')")
	flags.BoolVar(&c.IgnoreGit, "git", false, "Skip .git directories")
	flags.StringVar(&c.CustomIgnore, "ignore", "", "Custom ignore patterns (comma-separated, gitignore syntax)")
	flags.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flags.BoolVarP(&c.Quiet, "quiet", "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	flags.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	flags.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flags.StringVarP(&c.OutputFile, "output", "o", "", "Write matches to a file instead of stdout")
	flags.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	flags.BoolVar(&c.JSONOutput, "json", false, "Output matches as a JSON array")
	flags.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	return c
}

// Finalize validates the parsed flags and fills in the derived fields
func (c *Config) Finalize() error {
	c.SearchString = ExpandBackticks(c.SearchString)

	if c.RootDir == "" {
		c.RootDir = "."
	}
	absRootDir, err := filepath.Abs(c.RootDir)
	if err != nil {
		return fmt.Errorf("config: invalid start directory '%s': %w", c.RootDir, err)
	}
	c.RootDir = absRootDir

	if c.MatchTimeout < 0 {
		return fmt.Errorf("config: --match-timeout must not be negative, got %v", c.MatchTimeout)
	}

	if c.MaxFileSizeMB < 0 {
		return fmt.Errorf("config: --max-size must not be negative, got %d", c.MaxFileSizeMB)
	}

	c.FilePatterns = SplitList(c.FileFilter, ListSeparator)
	c.ExcludePatterns = SplitList(c.ExcludeDirs, ListSeparator)
	c.CustomRules = SplitList(c.CustomIgnore, ",")

	c.UseColors = !c.NoColor && isTerminal(os.Stderr) && c.OutputFile == ""
	c.ColorOutput = !c.NoColor && !c.JSONOutput && isTerminal(os.Stdout) && c.OutputFile == ""

	return nil
}

// MaxFileSizeBytes returns the size limit in bytes, 0 when unlimited
func (c *Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// SplitList splits s on sep, trimming whitespace and dropping empty entries.
// An empty s yields nil.
func SplitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ExpandBackticks replaces ` with \ so regex escapes survive shells that
// treat the backslash specially
func ExpandBackticks(s string) string {
	return strings.ReplaceAll(s, "`", `\`)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
