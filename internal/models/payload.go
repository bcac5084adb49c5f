// ABOUTME: Tagged payload variant for downloaded content.
// ABOUTME: A payload is either text or binary, never an ambiguous string.

package models

import (
	"encoding/base64"
	"unicode/utf8"
)

// Payload holds downloaded content as either text or raw bytes.
// The zero value is an empty text payload.
type Payload struct {
	binary bool
	text   string
	data   []byte
}

// Text wraps a string as a text payload.
func Text(s string) Payload {
	return Payload{text: s}
}

// Binary wraps raw bytes as a binary payload.
func Binary(b []byte) Payload {
	return Payload{binary: true, data: b}
}

// FromBytes returns a text payload when b is valid UTF-8, a binary
// payload otherwise.
func FromBytes(b []byte) Payload {
	if utf8.Valid(b) {
		return Text(string(b))
	}
	return Binary(b)
}

// IsText reports whether the payload holds text.
func (p Payload) IsText() bool {
	return !p.binary
}

// Encoding returns the wire encoding label: "text" or "base64".
func (p Payload) Encoding() string {
	if p.binary {
		return "base64"
	}
	return "text"
}

// Content returns the payload in wire form: the text itself, or the
// base64 encoding of the binary data.
func (p Payload) Content() string {
	if p.binary {
		return base64.StdEncoding.EncodeToString(p.data)
	}
	return p.text
}

// Size returns the byte length of the underlying content.
func (p Payload) Size() int {
	if p.binary {
		return len(p.data)
	}
	return len(p.text)
}
