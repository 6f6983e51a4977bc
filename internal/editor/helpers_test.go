package editor

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hidetatz/kai/internal/terminal"
)

/*
 * test utilities
 */

var errNoMoreKeys = errors.New("no more keys")

// keyScript replays a fixed list of keys, then fails.
type keyScript struct {
	keys []terminal.Key
}

func (s *keyScript) ReadKey() (terminal.Key, error) {
	if len(s.keys) == 0 {
		return 0, errNoMoreKeys
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

// typed returns the keys for typing s.
func typed(s string) []terminal.Key {
	keys := make([]terminal.Key, 0, len(s))
	for i := range len(s) {
		keys = append(keys, terminal.Key(s[i]))
	}
	return keys
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

type testEditor struct {
	*Editor
	script *keyScript
	out    *bytes.Buffer
	clock  *fakeClock
}

// newTestEditor returns an editor on a 10x40 virtual terminal holding rows.
func newTestEditor(rows []string, keys ...terminal.Key) *testEditor {
	te := &testEditor{
		script: &keyScript{keys: keys},
		out:    &bytes.Buffer{},
		clock:  &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	te.Editor = New(Config{
		Rows: 10,
		Cols: 40,
		Keys: te.script,
		Out:  te.out,
		Now:  te.clock.now,
	})

	for i, r := range rows {
		te.buf.InsertRow(i, []byte(r))
	}
	te.buf.MarkClean()
	return te
}

func (te *testEditor) press(keys ...terminal.Key) {
	te.script.keys = append(te.script.keys, keys...)
}

func (te *testEditor) rows() []string {
	var rows []string
	for i := range te.buf.Len() {
		rows = append(rows, string(te.buf.Row(i).Chars()))
	}
	return rows
}

var csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// screen draws a frame and returns its lines with escape sequences removed:
// the text rows, then the status bar, then the message bar.
func (te *testEditor) screen(t *testing.T) []string {
	t.Helper()

	te.out.Reset()
	if err := te.refreshScreen(); err != nil {
		t.Fatalf("refreshScreen: %v", err)
	}
	return strings.Split(csiPattern.ReplaceAllString(te.out.String(), ""), "\r\n")
}
