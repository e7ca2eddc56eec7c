// Package printer writes search matches to the output stream
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/dir-grep/internal/textfile"
	"github.com/fatih/color"
)

// Printer streams matching paths to the configured output destination
type Printer struct {
	output      io.Writer
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
	pathColor   *color.Color
	err         error
}

// New creates a new Printer writing plain lines to stdout
func New() *Printer {
	pathColor := color.New(color.Bold, color.FgCyan)
	pathColor.EnableColor()

	return &Printer{
		output:    os.Stdout,
		pathColor: pathColor,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables highlighting of matching paths
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// JSONMatchEntry represents a match in JSON output
type JSONMatchEntry struct {
	Path     string            `json:"path"`
	Encoding textfile.Encoding `json:"encoding"`
}

// PrintMatch writes one matching file immediately
func (p *Printer) PrintMatch(path string, enc textfile.Encoding) {

	if p.jsonOutput {
		if !p.jsonStarted {
			p.write("[\n")
			p.jsonStarted = true
		} else {
			p.write(",\n")
		}

		jsonData, err := json.MarshalIndent(JSONMatchEntry{Path: path, Encoding: enc}, "  ", "  ")
		if err != nil {
			p.setErr(fmt.Errorf("printer: marshal match: %w", err))
			return
		}
		p.write("  %s", jsonData)
		return
	}

	if p.useColors {
		p.write("%s\n", p.pathColor.Sprint(path))
	} else {
		p.write("%s\n", path)
	}
}

// Finalize ends the output of a run. In plain mode it writes a blank line
// followed by summaryLine and returns true. In JSON mode it closes the array
// and returns false, leaving the summary to the caller.
func (p *Printer) Finalize(summaryLine string) bool {
	if p.jsonOutput {
		if p.jsonStarted {
			p.write("\n]\n")
		} else {
			p.write("[]\n")
		}
		p.jsonStarted = false
		return false
	}

	p.write("\n%s\n", summaryLine)
	return true
}

// Err returns the first write error, if any
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) write(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(p.output, format, args...); err != nil {
		p.setErr(fmt.Errorf("printer: write: %w", err))
	}
}

func (p *Printer) setErr(err error) {
	if p.err == nil {
		p.err = err
	}
}
