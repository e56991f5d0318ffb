package urlencoding

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// InvalidCharacterError reports a character that may not appear where it
// does in a percent-encoded string: a character outside the unreserved
// set that is not '%', or a non-hex character in the two positions after
// a '%'. A '%' too close to the end of the input to be followed by two
// hex digits is reported as the offending character itself.
// Index is the zero-based position of the character in the input,
// counted in characters, not bytes.
type InvalidCharacterError struct {
	Character rune
	Index     int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Character, e.Index)
}

// InvalidUTF8Error reports that a string of well-formed percent-triplets
// decoded to a byte sequence that is not valid UTF-8,
// such as a truncated multi-byte character.
// Bytes holds the decoded sequence so callers can inspect or keep it;
// DecodeBytes returns the same bytes without this check.
type InvalidUTF8Error struct {
	Bytes []byte
}

func (e *InvalidUTF8Error) Error() string {
	return "decoded bytes are not valid UTF-8"
}

// Check that s contains only unreserved characters and well-formed
// percent-triplets. Returns nil if so, and otherwise an
// InvalidCharacterError locating the first offending character
// in left-to-right scan order; nothing past it is examined.
func validate(s string) error {
	chars := []rune(s)
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		switch {
		case c < utf8.RuneSelf && isUnreserved(byte(c)):
			// scan past

		case c == '%':
			// The next two characters must both be hex digits.
			for k := i + 1; k <= i+2; k++ {
				if k >= len(chars) {
					// Input ends inside the triplet,
					// so mark the '%' itself as bad.
					return &InvalidCharacterError{'%', i}
				}
				if h := chars[k]; h >= utf8.RuneSelf || !isHexDigit(byte(h)) {
					return &InvalidCharacterError{h, k}
				}
			}
			i += 2

		default:
			return &InvalidCharacterError{c, i}
		}
	}
	return nil
}

// Decode a percent-encoded string into the text it represents.
// The input may mix upper- and lower-case hex digits in its triplets.
// Fails with an InvalidCharacterError if the input is not well-formed,
// or with an InvalidUTF8Error if the decoded bytes are not valid UTF-8;
// no partial result is returned on either failure.
func Decode(s string) (string, error) {
	b, err := DecodeBytes(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &InvalidUTF8Error{Bytes: b}
	}
	return string(b), nil
}

// Decode a percent-encoded string into the raw bytes it represents,
// without requiring them to form UTF-8 text.
// The whole input is validated before any bytes are reconstructed,
// so a syntax error anywhere yields no result at all.
func DecodeBytes(s string) ([]byte, error) {
	if err := validate(s); err != nil {
		return nil, err
	}

	// Validation guarantees s is ASCII-only and that every '%'
	// is followed by exactly two hex digits.
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b = append(b, s[i])
			continue
		}
		hi, _ := getHexDigit(s[i+1])
		lo, _ := getHexDigit(s[i+2])
		b = append(b, hi<<4+lo)
		i += 2
	}
	return b, nil
}

// A Decoder decodes percent-encoded input from a stream.
type Decoder struct {
	r io.Reader
}

// Create a new Decoder that reads percent-encoded input from r.
// Decoding validates the entire input before reconstructing any bytes,
// so the Decoder consumes r to EOF on the first decode call.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode the input and write the raw decoded bytes to w.
// Returns the number of bytes written.
func (d *Decoder) WriteTo(w io.Writer) (n int64, err error) {
	b, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	l, err := w.Write(b)
	return int64(l), err
}

// Decode the input into a byte-slice.
func (d *Decoder) Bytes() ([]byte, error) {
	in, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(string(in))
}

// Decode the input into a UTF-8 string.
func (d *Decoder) String() (string, error) {
	in, err := io.ReadAll(d.r)
	if err != nil {
		return "", err
	}
	return Decode(string(in))
}
