package source

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decode strips a leading byte-order mark. UTF-16 input that starts with a
// BOM is transcoded to UTF-8; everything else passes through untouched.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r alone.
// Reports whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte{'\r', '\n'}, []byte{'\n'}), true
}

// buildLineIndex records the offset of every '\n'.
func buildLineIndex(content string) []int {
	out := make([]int, 0, len(content)/32+1)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			out = append(out, i)
		}
	}
	return out
}

// trimEOL drops one trailing "\n" or "\r\n".
func trimEOL(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
		if n > 0 && s[n-1] == '\r' {
			n--
		}
	}
	return s[:n]
}
