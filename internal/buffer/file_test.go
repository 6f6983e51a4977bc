package buffer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuffer_ReadFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rows  []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{""}},
		{"lf", "abc\n\nxy\n", []string{"abc", "", "xy"}},
		{"crlf", "abc\r\ndef\r\n", []string{"abc", "def"}},
		{"no trailing newline", "abc\ndef", []string{"abc", "def"}},
		{"tabs kept raw", "\tx\n", []string{"\tx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			n, err := b.ReadFrom(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, int64(len(tt.input)), n)
			require.Equal(t, tt.rows, rowStrings(b))
			require.False(t, b.Dirty())
		})
	}
}

func TestBuffer_Bytes(t *testing.T) {
	b := New()
	require.Empty(t, b.Bytes())

	for i, s := range []string{"abc", "", "xy"} {
		b.InsertRow(i, []byte(s))
	}
	require.Equal(t, "abc\n\nxy\n", string(b.Bytes()))

	loaded := New()
	_, err := loaded.ReadFrom(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Equal(t, []string{"abc", "", "xy"}, rowStrings(loaded))
}

func TestBuffer_SaveLoadRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.SliceOf(rapid.SampledFrom([]byte{'a', 'z', ' ', '\t', '.'}))
		rows := rapid.SliceOf(line).Draw(t, "rows")

		b := New()
		for i, r := range rows {
			b.InsertRow(i, r)
		}

		loaded := New()
		_, err := loaded.ReadFrom(bytes.NewReader(b.Bytes()))
		require.NoError(t, err)
		require.Equal(t, b.Len(), loaded.Len())
		for i := range rows {
			require.Equal(t, b.Row(i).Chars(), loaded.Row(i).Chars())
		}
	})
}
