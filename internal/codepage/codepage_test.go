package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRaw(t *testing.T) {
	for _, name := range []string{"", "raw", "RAW", "  raw "} {
		enc, err := Lookup(name)
		require.NoError(t, err)
		assert.Nil(t, enc, name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("klingon-9000")
	assert.Error(t, err)

	_, err = Decode("klingon-9000", []byte("x"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	got, err := Decode("windows-1252", []byte{'c', 'a', 'f', 0xe9, ' ', 0x80})
	require.NoError(t, err)
	assert.Equal(t, "café €", got)

	got, err = Decode("cp1252", []byte{0xe9})
	require.NoError(t, err)
	assert.Equal(t, "é", got)
}

func TestEncode(t *testing.T) {
	got, err := Encode("windows-1252", "café €")
	require.NoError(t, err)
	assert.Equal(t, "caf\xe9 \x80", got)

	_, err = Encode("windows-1252", "日本")
	assert.Error(t, err)
}

func TestRawPassthrough(t *testing.T) {
	got, err := Decode(Raw, []byte("\xe9 bytes"))
	require.NoError(t, err)
	assert.Equal(t, "\xe9 bytes", got)

	got, err = Encode("", "héllo")
	require.NoError(t, err)
	assert.Equal(t, "héllo", got)
}

func TestRoundTrip(t *testing.T) {
	const s = "Grüße, ½ ±"
	enc, err := Encode("windows-1252", s)
	require.NoError(t, err)
	dec, err := Decode("windows-1252", []byte(enc))
	require.NoError(t, err)
	assert.Equal(t, s, dec)
}
