package editor

import "github.com/hidetatz/kai/internal/terminal"

func (e *Editor) moveCursor(k terminal.Key) {
	row := e.buf.Row(e.cy)

	switch k {
	case terminal.KeyArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			// wrap to the end of the upper line
			e.cy--
			e.cx = e.buf.Row(e.cy).Len()
		}

	case terminal.KeyArrowRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}

	case terminal.KeyArrowUp:
		if e.cy != 0 {
			e.cy--
		}

	case terminal.KeyArrowDown:
		// the row right after the last one is reachable so text can be appended
		if e.cy < e.buf.Len() {
			e.cy++
		}
	}

	// if the new line is shorter, the x should be the end of it
	rowlen := 0
	if row := e.buf.Row(e.cy); row != nil {
		rowlen = row.Len()
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// movePage moves the cursor to the top or bottom of the screen, then one
// screen further.
func (e *Editor) movePage(k terminal.Key) {
	dir := terminal.KeyArrowUp
	if k == terminal.KeyPageUp {
		e.cy = e.rowoff
	} else {
		dir = terminal.KeyArrowDown
		e.cy = min(e.rowoff+e.screenRows-1, e.buf.Len())
	}

	for range e.screenRows {
		e.moveCursor(dir)
	}
}
