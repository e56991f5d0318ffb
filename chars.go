package urlencoding

// Upper-case hex digits used when producing percent-triplets.
const upperhex = "0123456789ABCDEF"

// Returns true if c is one of the unreserved characters defined in RFC 3986.
// This is the one membership test shared by the encoder, the validator,
// and the decoder, so that the three cannot drift apart.
func isUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	default:
		return isAlpha(c) || isDigit(c)
	}
}

// Returns true if c is an ASCII alphabetic character.
func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Returns true if c is an ASCII digit.
func isDigit(c byte) bool {
	return (c >= '0' && c <= '9')
}

// Returns true if c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	_, ok := getHexDigit(c)
	return ok
}

// Returns the digit value of a hex digit c.
// Returns true in ok if successful and false otherwise.
func getHexDigit(c byte) (v byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
