package storage

import "encoding/base64"

// Codec is a reversible transform applied to serialized values before they
// reach the backend.
type Codec interface {
	Encode(data []byte) []byte
	Decode(data []byte) ([]byte, bool)
}

// Base64Codec hides stored values from casual inspection. It is not
// encryption: anyone with access to the store can decode it.
type Base64Codec struct{}

func (Base64Codec) Encode(data []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(out, data)
	return out
}

func (Base64Codec) Decode(data []byte) ([]byte, bool) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(out, data)
	if err != nil {
		return nil, false
	}
	return out[:n], true
}

type IdentityCodec struct{}

func (IdentityCodec) Encode(data []byte) []byte         { return data }
func (IdentityCodec) Decode(data []byte) ([]byte, bool) { return data, true }
