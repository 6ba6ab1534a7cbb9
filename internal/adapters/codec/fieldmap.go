package codec

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
)

// FieldMap is a flat, ordered request body. Keys follow the dotted/indexed
// convention of the form endpoints (items.0.amount). A key appears at most
// once; setting it again replaces the value in place.
type FieldMap struct {
	keys   []string
	values map[string]string
}

func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]string)}
}

func (m *FieldMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// SetOptional skips empty values so absent fields never reach the wire.
func (m *FieldMap) SetOptional(key, value string) {
	if value == "" {
		return
	}
	m.Set(key, value)
}

func (m *FieldMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *FieldMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *FieldMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Encode renders an application/x-www-form-urlencoded body in the wire
// charset, keys in insertion order.
func (m *FieldMap) Encode() ([]byte, error) {
	var buf bytes.Buffer
	for i, k := range m.keys {
		key, err := toWire(k, k)
		if err != nil {
			return nil, err
		}
		val, err := toWire(k, m.values[k])
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte('&')
		}
		// QueryEscape works on bytes, so latin-1 octets become %XX as the
		// endpoint expects.
		buf.WriteString(url.QueryEscape(string(key)))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(string(val)))
	}
	return buf.Bytes(), nil
}

// String is a debug rendering in insertion order.
func (m *FieldMap) String() string {
	return m.Redacted()
}

// Redacted is String with the values of the given keys masked.
func (m *FieldMap) Redacted(redact ...string) string {
	hidden := make(map[string]bool, len(redact))
	for _, k := range redact {
		hidden[k] = true
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		v := m.values[k]
		if hidden[k] {
			v = "***"
		}
		fmt.Fprintf(&b, "%s=%s", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
