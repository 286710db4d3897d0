package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestAdapter(t *testing.T, codec Codec) (*Adapter, *quotaBackend, *testLogger, *testMetrics) {
	t.Helper()
	fb, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	qb := &quotaBackend{Backend: fb}
	logger := &testLogger{}
	metrics := newTestMetrics()
	return NewAdapter(qb, codec, logger, metrics), qb, logger, metrics
}

func TestAdapter_SaveLoad(t *testing.T) {
	a, _, _, _ := newTestAdapter(t, IdentityCodec{})

	require.True(t, a.Save("sample", sample{Name: "a", Count: 2}))

	var got sample
	require.True(t, a.Load("sample", &got))
	assert.Equal(t, sample{Name: "a", Count: 2}, got)
	assert.True(t, a.Exists("sample"))
}

func TestAdapter_LoadAbsentIsQuiet(t *testing.T) {
	a, _, logger, metrics := newTestAdapter(t, IdentityCodec{})

	var got sample
	assert.False(t, a.Load("missing", &got))
	assert.Zero(t, logger.warnings)
	assert.Empty(t, metrics.failures)
}

func TestAdapter_SaveFailureIsReportedNotRaised(t *testing.T) {
	a, qb, logger, metrics := newTestAdapter(t, IdentityCodec{})
	qb.full = true

	assert.False(t, a.Save("sample", sample{Name: "x"}))
	assert.False(t, a.Exists("sample"))
	assert.Equal(t, 1, logger.warnings)
	assert.Equal(t, 1, metrics.failures["save"])
}

func TestAdapter_UnserializableValue(t *testing.T) {
	a, _, _, metrics := newTestAdapter(t, IdentityCodec{})

	assert.False(t, a.Save("bad", make(chan int)))
	assert.Equal(t, 1, metrics.failures["save"])
}

func TestAdapter_CorruptValueLoadsAsAbsent(t *testing.T) {
	a, qb, _, metrics := newTestAdapter(t, IdentityCodec{})
	require.NoError(t, qb.Put("sample", []byte("{not json")))

	var got sample
	assert.False(t, a.Load("sample", &got))
	assert.Equal(t, 1, metrics.failures["load"])
}

func TestAdapter_Base64CodecStoresEncoded(t *testing.T) {
	a, qb, _, _ := newTestAdapter(t, Base64Codec{})

	require.True(t, a.Save("auth_token", "secret-token"))

	raw, err := qb.Get("auth_token")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-token")

	var token string
	require.True(t, a.Load("auth_token", &token))
	assert.Equal(t, "secret-token", token)
}

func TestAdapter_PlainValueUnderBase64CodecIsAbsent(t *testing.T) {
	a, qb, _, metrics := newTestAdapter(t, Base64Codec{})
	require.NoError(t, qb.Put("login_attempts", []byte("{{{")))

	var n int
	assert.False(t, a.Load("login_attempts", &n))
	assert.Equal(t, 1, metrics.failures["decode"])
}

func TestAdapter_RemoveClearKeys(t *testing.T) {
	a, _, _, _ := newTestAdapter(t, IdentityCodec{})
	require.True(t, a.Save("b", 1))
	require.True(t, a.Save("a", 2))

	assert.Equal(t, []string{"a", "b"}, a.Keys())

	a.Remove("a")
	a.Remove("a")
	assert.Equal(t, []string{"b"}, a.Keys())

	a.Clear()
	assert.Empty(t, a.Keys())
}

func TestAdapter_Sizes(t *testing.T) {
	a, _, _, _ := newTestAdapter(t, IdentityCodec{})
	require.True(t, a.Save("k", "v"))   // "v" is 3 bytes as JSON
	require.True(t, a.Save("kk", 12345)) // 5 bytes

	assert.Equal(t, 1+3, a.Size("k"))
	assert.Equal(t, 2+5, a.Size("kk"))
	assert.Equal(t, 0, a.Size("missing"))
	assert.Equal(t, 4+7, a.TotalSize())
}
