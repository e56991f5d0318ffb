// Package urlencoding implements percent-encoding and decoding of text
// using the unreserved character set defined in RFC 3986.
//
// Encoding replaces each byte of the input's UTF-8 encoding that is not
// an unreserved character with a percent-triplet: '%' followed by the
// byte's value as two upper-case hex digits. Decoding reverses this,
// after first validating that the whole input is well-formed; a syntax
// error reports the first offending character and its position, counted
// in characters rather than bytes.
//
// This package deliberately does not parse URIs structurally and does
// not support alternative escapings such as '+' for space; for those,
// see net/url.
package urlencoding

import (
	"bytes"
	"io"
	"strings"
)

// Default chunk size for streaming encode operation.
const defaultChunkLen = 4096

// Percent-encode the UTF-8 encoding of s.
// The result contains only unreserved characters and percent-triplets;
// every input has a defined output, so there is no error to return.
// Multi-byte characters become one triplet per byte of their encoding.
func Encode(s string) string {
	return EncodeBytes([]byte(s))
}

// Percent-encode an arbitrary byte-slice,
// which need not represent UTF-8 text.
func EncodeBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if isUnreserved(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		}
	}
	return sb.String()
}

// An Encoder percent-encodes a stream of bytes to an output stream.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// Create a new Encoder that writes percent-encoded output to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode bytes read from r until encountering EOF.
// Supports streaming:
// r can represent arbitrarily many bytes (even infinite),
// since the encoding is bytewise and needs no lookahead.
// Returns the number of bytes consumed from r.
func (e *Encoder) ReadFrom(r io.Reader) (n int64, err error) {
	buf := e.getBuf()
	tot := int64(0)
	for {
		l, err := r.Read(buf)
		if l > 0 {
			if _, werr := io.WriteString(e.w, EncodeBytes(buf[:l])); werr != nil {
				return tot, werr
			}
			tot += int64(l)
		}
		if err == io.EOF {
			return tot, nil
		}
		if err != nil {
			return tot, err
		}
	}
}

// Encode a byte-slice.
func (e *Encoder) Bytes(b []byte) error {
	_, err := e.ReadFrom(bytes.NewReader(b))
	return err
}

// Encode a UTF-8 string.
func (e *Encoder) String(s string) error {
	_, err := e.ReadFrom(strings.NewReader(s))
	return err
}

// Get the current chunk buffer, creating one if necessary.
func (e *Encoder) getBuf() []byte {
	if e.buf == nil {
		e.buf = make([]byte, defaultChunkLen)
	}
	return e.buf
}
