package printer

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/dir-grep/internal/textfile"
)

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)

	p.PrintMatch("/root/a.txt", textfile.UTF8)
	p.PrintMatch("/root/sub/b.txt", textfile.UTF16LE)
	assert.True(t, p.Finalize("The search string (x) found in 2 file(s)."))

	assert.Equal(t, "/root/a.txt\n/root/sub/b.txt\n\nThe search string (x) found in 2 file(s).\n", buf.String())
	assert.NoError(t, p.Err())
}

func TestPrinter_Colors(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(true)

	p.PrintMatch("a.txt", textfile.UTF8)

	assert.Contains(t, buf.String(), "a.txt")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)

	p.PrintMatch("a.txt", textfile.UTF8)
	p.PrintMatch("b.txt", textfile.UTF32BE)
	assert.False(t, p.Finalize("ignored"))

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	assert.Equal(t, []map[string]string{
		{"path": "a.txt", "encoding": "UTF-8"},
		{"path": "b.txt", "encoding": "UTF-32BE"},
	}, entries)
	assert.NotContains(t, buf.String(), "ignored")
}

func TestPrinter_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)

	p.Finalize("")

	assert.Equal(t, "[]\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrinter_WriteError(t *testing.T) {
	p := New().WithOutput(failingWriter{})

	p.PrintMatch("a.txt", textfile.UTF8)
	p.Finalize("done")

	assert.ErrorContains(t, p.Err(), "disk full")
}
