// Package encoding normalizes uploaded files to UTF-8 before parsing.
// Spreadsheet exports from banks and phones arrive in anything from
// UTF-16 to Windows-1252, often without a BOM.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// charsetDecoders maps chardet results we act on to their decoders.
var charsetDecoders = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252, // superset, safer default
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-15":  charmap.ISO8859_15,
}

// NewUTF8Reader wraps r in a reader that yields UTF-8 text regardless of
// the source encoding. Detection order: BOM, valid UTF-8 as-is, chardet
// heuristics, Windows-1252 as the last resort.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	if bytes.HasPrefix(head, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if bytes.HasPrefix(head, []byte{0xFF, 0xFE}) {
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if bytes.HasPrefix(head, []byte{0xFE, 0xFF}) {
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if result, detectErr := chardet.NewTextDetector().DetectBest(head); detectErr == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if dec, ok := charsetDecoders[result.Charset]; ok {
			return transform.NewReader(br, dec.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
