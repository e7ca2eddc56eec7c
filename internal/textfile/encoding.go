package textfile

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Encoding identifies the text encoding used to decode a file.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

var encodingNames = map[Encoding]string{
	UTF8:    "UTF-8",
	UTF16LE: "UTF-16LE",
	UTF16BE: "UTF-16BE",
	UTF32LE: "UTF-32LE",
	UTF32BE: "UTF-32BE",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// codec returns the x/text encoding for e. Each decoder strips a leading
// byte-order mark and otherwise decodes with the fixed endianness.
func (e Encoding) codec() encoding.Encoding {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM)
	default:
		return unicode.UTF8BOM
	}
}

// Decode converts raw file content to a string using encoding e.
// Invalid sequences become U+FFFD rather than failing, and so does a
// trailing partial UTF-32 code unit.
func (e Encoding) Decode(content []byte) (string, error) {
	body, tail := content, 0
	if e == UTF32LE || e == UTF32BE {
		tail = len(content) % 4
		body = content[:len(content)-tail]
	}

	out, _, err := transform.Bytes(e.codec().NewDecoder(), body)
	if err != nil {
		return "", fmt.Errorf("textfile: decode %s: %w", e, err)
	}
	if tail > 0 {
		out = utf8.AppendRune(out, utf8.RuneError)
	}
	return string(out), nil
}

// ReadText reads the whole file and decodes it with enc.
func ReadText(path string, enc Encoding) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("textfile: read: %w", err)
	}

	text, err := enc.Decode(data)
	if err != nil {
		return "", fmt.Errorf("textfile: read %s: %w", path, err)
	}
	return text, nil
}
