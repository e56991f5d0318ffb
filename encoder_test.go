package urlencoding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTest struct {
	in, out string
}

var encodeTests = []encodeTest{
	{"this that", "this%20that"},
	{"👾 Exterminate!", "%F0%9F%91%BE%20Exterminate%21"},

	// The empty string and purely-unreserved input pass through unchanged
	{"", ""},
	{"abcXYZ019-_.~", "abcXYZ019-_.~"},

	// '%' itself is not unreserved
	{"100% %", "100%25%20%25"},
	{"a+b=c", "a%2Bb%3Dc"},
	{"/path?q=1#frag", "%2Fpath%3Fq%3D1%23frag"},
}

func TestEncode(t *testing.T) {
	for _, et := range encodeTests {
		assert.Equal(t, et.out, Encode(et.in), "input %q", et.in)
	}
}

// Every byte value has a defined, well-formed encoding.
func TestEncodeTotality(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	enc := EncodeBytes(all)
	require.NoError(t, validate(enc))

	dec, err := DecodeBytes(enc)
	require.NoError(t, err)
	assert.Equal(t, all, dec)
}

func TestEncodeBytes(t *testing.T) {
	assert.Equal(t, "%00%FF%C3", EncodeBytes([]byte{0x00, 0xff, 0xc3}))
	assert.Equal(t, "abc", EncodeBytes([]byte("abc")))
}

func TestEncoderStream(t *testing.T) {
	// A payload longer than the Encoder's chunk buffer,
	// so chunk boundaries fall inside multi-byte characters.
	payload := strings.Repeat("👾 Exterminate! ", 1000)

	var buf bytes.Buffer
	e := NewEncoder(&buf)
	n, err := e.ReadFrom(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, Encode(payload), buf.String())

	buf.Reset()
	require.NoError(t, e.String("this that"))
	assert.Equal(t, "this%20that", buf.String())

	buf.Reset()
	require.NoError(t, e.Bytes([]byte{0xff}))
	assert.Equal(t, "%FF", buf.String())
}
