package terminal

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestDecoder_ReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"printable", "a", 'a'},
		{"enter", "\r", KeyEnter},
		{"backspace", "\x7f", KeyBackspace},
		{"ctrl-q", "\x11", Ctrl('q')},
		{"arrow up", "\x1b[A", KeyArrowUp},
		{"arrow down", "\x1b[B", KeyArrowDown},
		{"arrow right", "\x1b[C", KeyArrowRight},
		{"arrow left", "\x1b[D", KeyArrowLeft},
		{"home bracket", "\x1b[H", KeyHome},
		{"end bracket", "\x1b[F", KeyEnd},
		{"home O", "\x1bOH", KeyHome},
		{"end O", "\x1bOF", KeyEnd},
		{"home 1~", "\x1b[1~", KeyHome},
		{"home 7~", "\x1b[7~", KeyHome},
		{"delete", "\x1b[3~", KeyDelete},
		{"end 4~", "\x1b[4~", KeyEnd},
		{"end 8~", "\x1b[8~", KeyEnd},
		{"page up", "\x1b[5~", KeyPageUp},
		{"page down", "\x1b[6~", KeyPageDown},
		{"lone escape", "\x1b", KeyEscape},
		{"escape then one byte", "\x1b[", KeyEscape},
		{"digit without terminator", "\x1b[5", KeyEscape},
		{"digit with wrong terminator", "\x1b[5x", KeyEscape},
		{"unknown digit", "\x1b[9~", KeyEscape},
		{"unknown letter", "\x1b[Z", KeyEscape},
		{"unknown O letter", "\x1bOP", KeyEscape},
		{"unknown prefix", "\x1bxy", KeyEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(bytes.NewReader([]byte(tt.input)))
			got, err := d.ReadKey()
			require.NoError(t, err)
			require.Equal(t, tt.want, got, "got %v", got)
		})
	}
}

func TestDecoder_ReadKeySequence(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte("x\x1b[Ab\x1b[6~\r")))

	var got []Key
	for range 5 {
		k, err := d.ReadKey()
		require.NoError(t, err)
		got = append(got, k)
	}

	require.Equal(t, []Key{'x', KeyArrowUp, 'b', KeyPageDown, KeyEnter}, got)
}

// timeoutReader returns nothing for the first few reads, like a raw tty
// waiting for input.
type timeoutReader struct {
	idle int
	data []byte
}

func (r *timeoutReader) Read(p []byte) (int, error) {
	if r.idle > 0 {
		r.idle--
		return 0, nil
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestDecoder_WaitsForFirstByte(t *testing.T) {
	d := NewDecoder(&timeoutReader{idle: 3, data: []byte("q")})
	k, err := d.ReadKey()
	require.NoError(t, err)
	require.Equal(t, Key('q'), k)
}

func TestDecoder_ReadError(t *testing.T) {
	boom := errors.New("boom")
	d := NewDecoder(iotest.ErrReader(boom))
	_, err := d.ReadKey()
	require.ErrorIs(t, err, boom)
}

func TestKey_String(t *testing.T) {
	require.Equal(t, "Ctrl-Q", Ctrl('q').String())
	require.Equal(t, "a", Key('a').String())
	require.Equal(t, "PageDown", KeyPageDown.String())
	require.True(t, Key('~').IsPrintable())
	require.False(t, KeyBackspace.IsPrintable())
	require.False(t, KeyArrowUp.IsPrintable())
}
