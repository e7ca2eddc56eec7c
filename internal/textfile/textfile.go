// Package textfile decides whether a file holds text and which encoding to
// read it with.
//
// Classification looks at a short prefix of the file only. A file is binary
// when that prefix contains a control byte other than NUL, TAB, LF, CR or ESC;
// the encoding comes from the byte-order mark, defaulting to UTF-8.
package textfile

import (
	"fmt"
	"io"
	"os"
)

// SampleSize is the number of leading bytes inspected by IsText.
const SampleSize = 1000

// bomSize is the longest byte-order mark we recognise.
const bomSize = 4

// allowedControl holds the control bytes (0x00-0x1F) that do not make a file binary.
var allowedControl = [32]bool{
	0x00: true, // NUL, common in UTF-16/UTF-32 text
	0x09: true, // TAB
	0x0A: true, // LF
	0x0D: true, // CR
	0x1B: true, // ESC
}

// Verdict is the classification result for one file.
type Verdict struct {
	IsText   bool
	Encoding Encoding // meaningful only when IsText is true
}

// IsTextSample reports whether sample looks like text.
// An empty sample is text.
func IsTextSample(sample []byte) bool {
	var seen [32]bool
	for _, b := range sample {
		if b < 32 {
			seen[b] = true
		}
	}
	for b, present := range seen {
		if present && !allowedControl[b] {
			return false
		}
	}
	return true
}

// EncodingFromBOM picks an encoding from the leading bytes of a file.
// Missing bytes compare as zero, so short input never fails.
func EncodingFromBOM(prefix []byte) Encoding {
	var bom [bomSize]byte
	copy(bom[:], prefix)

	switch {
	case bom[0] == 0xFF && bom[1] == 0xFE && bom[2] == 0x00 && bom[3] == 0x00:
		return UTF32LE
	case bom[0] == 0xFF && bom[1] == 0xFE:
		return UTF16LE
	case bom[0] == 0xFE && bom[1] == 0xFF:
		return UTF16BE
	case bom[0] == 0x00 && bom[1] == 0x00 && bom[2] == 0xFE && bom[3] == 0xFF:
		return UTF32BE
	case bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF:
		return UTF8
	default:
		return UTF8
	}
}

// IsText reads up to SampleSize bytes of path and classifies them.
func IsText(path string) (bool, error) {
	sample, err := readPrefix(path, SampleSize)
	if err != nil {
		return false, err
	}
	return IsTextSample(sample), nil
}

// GuessEncoding reads the byte-order mark of path.
func GuessEncoding(path string) (Encoding, error) {
	prefix, err := readPrefix(path, bomSize)
	if err != nil {
		return UTF8, err
	}
	return EncodingFromBOM(prefix), nil
}

// Classify combines IsText and GuessEncoding with a single open of the file.
func Classify(path string) (Verdict, error) {
	sample, err := readPrefix(path, SampleSize)
	if err != nil {
		return Verdict{}, err
	}
	if !IsTextSample(sample) {
		return Verdict{}, nil
	}
	return Verdict{IsText: true, Encoding: EncodingFromBOM(sample)}, nil
}

// readPrefix returns at most n leading bytes of the file. The handle is
// closed before returning, including when the file is shorter than n.
func readPrefix(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textfile: open: %w", err)
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("textfile: read %s: %w", path, err)
	}
	return buf[:read], nil
}
