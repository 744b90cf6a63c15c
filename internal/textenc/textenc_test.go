package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		in      []byte
		want    string
	}{
		{"passthrough empty name", "", []byte("caf\xc3\xa9"), "café"},
		{"passthrough utf-8", "UTF-8", []byte("caf\xc3\xa9"), "café"},
		{"windows-1252", "windows-1252", []byte("caf\xe9 \x80"), "café €"},
		{"latin1 alias", "latin1", []byte("caf\xe9"), "café"},
		{"latin9 table name", "ISO-8859-15", []byte("\xa4"), "€"},
		{"iana index name", "KOI8-R", []byte("\xc1"), "а"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in, tt.charset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeUnknownCharset(t *testing.T) {
	_, err := Decode([]byte("x"), "klingon-8")
	require.ErrorIs(t, err, ErrUnknownCharset)
}

func TestDecodeCP1252(t *testing.T) {
	decoded, err := Decode([]byte("caf\xe9"), "CP1252")
	require.NoError(t, err)
	assert.Equal(t, "café", string(decoded))
}

func TestIsPassthrough(t *testing.T) {
	assert.True(t, IsPassthrough(""))
	assert.True(t, IsPassthrough(" utf8 "))
	assert.False(t, IsPassthrough("windows-1252"))
}
