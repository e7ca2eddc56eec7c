package summary

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/dir-grep/internal/walker"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Info(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestLine(t *testing.T) {
	assert.Equal(t, "The search string (hel+o) found in 2 file(s).", Line("hel+o", 2))
	assert.Equal(t, "The search string (x) found in 1 file(s).", Line("x", 1))
	assert.Equal(t, "No files containing the search string (a|b) were found.", Line("a|b", 0))
}

func TestDisplayResults(t *testing.T) {
	log := &recordingLogger{}
	DisplayResults(log, 3, 1, 1500*time.Microsecond, false)
	assert.Equal(t, []string{
		"Search matched 3 file(s), skipped 1 item(s).",
		"Search complete in 2ms.",
	}, log.lines)

	quiet := &recordingLogger{}
	DisplayResults(quiet, 3, 1, time.Second, true)
	assert.Empty(t, quiet.lines)
}

func TestDisplaySkippedItems(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	items := []walker.SkippedItem{
		{Path: "/r/z.bin", Reason: walker.ReasonSkippedBinary},
		{Path: "/r/obj", Reason: walker.ReasonExcludedDir, IsDir: true},
	}

	DisplaySkippedItems(log, items, &out, false)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Skipped DIR : /r/obj"))
	assert.True(t, strings.HasSuffix(lines[0], "[Excluded (Directory Pattern)]"))
	assert.True(t, strings.HasPrefix(lines[1], "Skipped FILE: /r/z.bin"))
	assert.Equal(t, "/r/z.bin", items[0].Path, "input order is left alone")
	assert.Equal(t, "--- Skipped Items (2) ---", log.lines[0])
}

func TestDisplaySkippedItems_None(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer

	DisplaySkippedItems(log, nil, &out, false)

	assert.Empty(t, out.String())
	assert.Contains(t, log.lines, "No items were skipped.")
}
