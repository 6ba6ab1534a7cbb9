package codec

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
)

// Charset is the single legacy encoding every endpoint declares.
const Charset = "ISO-8859-1"

var wireEncoding encoding.Encoding = charmap.ISO8859_1

// toWire converts UTF-8 text to the wire charset. Runes outside the charset
// are a validation error naming field; they are never replaced.
func toWire(field, s string) ([]byte, error) {
	b, err := wireEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, domain.NewInvalidFieldError(field, "contains characters not representable in "+Charset)
	}
	return b, nil
}

// lookupEncoding resolves an IANA charset label. UTF-8 maps to nil, meaning
// no transcoding is needed.
func lookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(strings.ToLower(label))
	if label == "" || label == "utf-8" || label == "utf8" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// charsetReader plugs into xml.Decoder.CharsetReader for documents that
// declare a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}
