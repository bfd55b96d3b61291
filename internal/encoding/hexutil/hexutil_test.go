package hexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	b, err := Decode("0x04ff")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0xff}, b)

	// No prefix required.
	b, err = Decode("04ff")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0xff}, b)

	// Odd length is left-padded.
	b, err = Decode("f")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x0f}, b)

	b, err = Decode("0Xabc")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0xbc}, b)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("")
	assert.Error(t, err)

	_, err = Decode("0x")
	assert.Error(t, err)

	_, err = Decode("0xzz")
	assert.Error(t, err)

	_, err = Decode("hello world")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "04ff", Encode([]byte{0x04, 0xff}))
	assert.Equal(t, "", Encode(nil))
}

func TestRoundTrip(t *testing.T) {
	in := []byte{0x00, 0x01, 0xab, 0xcd, 0xef}
	out, err := Decode(Encode(in))
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}
