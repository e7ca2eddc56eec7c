// Package summary handles display of search results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/dir-grep/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Line returns the closing line of a search
func Line(expression string, matches int) string {
	if matches > 0 {
		return fmt.Sprintf("The search string (%s) found in %d file(s).", expression, matches)
	}
	return fmt.Sprintf("No files containing the search string (%s) were found.", expression)
}

// DisplayResults logs timing and skip counts of a finished search
func DisplayResults(
	logger Logger,
	matches int,
	skipped int,
	duration time.Duration,
	quiet bool,
) {
	if !quiet {
		logger.Info("Search matched %d file(s), skipped %d item(s).", matches, skipped)
		logger.Info("Search complete in %v.", duration.Round(time.Millisecond))
	}
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) > 0 {
		// Sort a copy for consistent output
		items := append([]walker.SkippedItem(nil), skippedItems...)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Path < items[j].Path
		})
		for _, item := range items {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, item.Path, item.Reason)
		}
	} else {
		infoLog("No items were skipped.")
	}
	infoLog("--- End Skipped Items ---")
}
