package terminal

import (
	"fmt"
	"io"
)

// VT100 sequences written by the editor.
const (
	ClearScreen  = "\x1b[2J"
	ClearLine    = "\x1b[K"
	CursorHome   = "\x1b[H"
	HideCursor   = "\x1b[?25l"
	ShowCursor   = "\x1b[?25h"
	InvertColors = "\x1b[7m"
	ResetColors  = "\x1b[m"

	cursorToCorner     = "\x1b[999C\x1b[999B"
	deviceStatusReport = "\x1b[6n"
)

// MoveCursor returns the sequence placing the cursor at x, y. left, top is (0, 0).
func MoveCursor(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

// Reset clears the screen and homes the cursor.
func Reset(w io.Writer) error {
	_, err := io.WriteString(w, ClearScreen+CursorHome)
	return err
}
