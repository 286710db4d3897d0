package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Codec_RoundTrip(t *testing.T) {
	c := Base64Codec{}
	for _, in := range []string{"", "5", `{"username":"admin"}`, "ünïcødé ✓"} {
		encoded := c.Encode([]byte(in))
		decoded, ok := c.Decode(encoded)
		require.True(t, ok)
		assert.Equal(t, in, string(decoded))
	}
}

func TestBase64Codec_HidesPlaintext(t *testing.T) {
	encoded := Base64Codec{}.Encode([]byte(`"secret-token"`))
	assert.NotContains(t, string(encoded), "secret-token")
}

func TestBase64Codec_RejectsForeignData(t *testing.T) {
	_, ok := Base64Codec{}.Decode([]byte("not base64 at all!"))
	assert.False(t, ok)
}

func TestIdentityCodec(t *testing.T) {
	data := []byte(`[1,2,3]`)
	assert.Equal(t, data, IdentityCodec{}.Encode(data))
	out, ok := IdentityCodec{}.Decode(data)
	assert.True(t, ok)
	assert.Equal(t, data, out)
}
