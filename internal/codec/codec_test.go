package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, in := range []string{"", "WAREHOUSE", "POISON", "\x00\x01\xffbinary"} {
		enc := HexEncode([]byte(in))
		got, err := HexDecode(enc)
		require.NoError(t, err)
		assert.Equal(t, []byte(in), got)
	}
}

func TestHexEncodeUppercase(t *testing.T) {
	assert.Equal(t, "57415245484F555345", HexEncode([]byte("WAREHOUSE")))
}

func TestHexDecodeCaseInsensitive(t *testing.T) {
	upper, err := HexDecode("504F49534F4E")
	require.NoError(t, err)
	lower, err := HexDecode("504f49534f4e")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "POISON", string(upper))
}

func TestHexDecodeInvalid(t *testing.T) {
	_, err := HexDecode("zz")
	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "hex", decErr.Encoding)
}

func TestBase64RoundTrip(t *testing.T) {
	for _, in := range []string{"", "a", "ab", "abc", "2025-01-15T14:30:00Z"} {
		enc := Base64Encode([]byte(in))
		got, err := Base64Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, []byte(in), got)
	}
}

func TestBase64DecodeAcceptsUnpadded(t *testing.T) {
	got, err := Base64Decode("YWJjZA") // "abcd" without padding
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(got))
}

func TestBase64DecodeInvalid(t *testing.T) {
	_, err := Base64Decode("not!!valid@@base64")
	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "base64", decErr.Encoding)
}

func TestJSONBase64RoundTrip(t *testing.T) {
	type payload struct {
		WeaponType string   `json:"weapon_type"`
		Clearance  []string `json:"clearance"`
	}
	in := payload{WeaponType: "Nano-Toxin Injector", Clearance: []string{"324-26-8712", "555-12-3456"}}
	enc, err := EncodeJSONBase64(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, DecodeJSONBase64(enc, &out))
	assert.Equal(t, in, out)
}

func TestJSONBase64DecodeGarbage(t *testing.T) {
	var out map[string]any
	err := DecodeJSONBase64(Base64Encode([]byte("{broken")), &out)
	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "base64+json", decErr.Encoding)
}
