// Package codec holds the encodings used to obscure clue payloads: uppercase
// hex for spatial data and standard base64 for everything serialized. Encode
// and decode are exact inverses for any valid input.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeError reports that an encoded payload could not be decoded. Callers
// can rely on receiving this type rather than whatever the underlying codec
// returned.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HexEncode renders b as uppercase hex pairs, one pair per byte.
func HexEncode(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexDecode accepts upper or lower case hex.
func HexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Encoding: "hex", Err: err}
	}
	return b, nil
}

// Base64Encode uses the standard alphabet with padding.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64Decode accepts both padded and unpadded input.
func Base64Decode(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Encoding: "base64", Err: err}
	}
	return b, nil
}

// EncodeJSONBase64 serializes v to JSON and base64-encodes the result.
func EncodeJSONBase64(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return Base64Encode(raw), nil
}

// DecodeJSONBase64 is the inverse of EncodeJSONBase64.
func DecodeJSONBase64(s string, v any) error {
	raw, err := Base64Decode(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodeError{Encoding: "base64+json", Err: err}
	}
	return nil
}
