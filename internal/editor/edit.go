package editor

/*
 * editing operations, all relative to the cursor
 */

func (e *Editor) insertChar(c byte) {
	if e.cy == e.buf.Len() {
		e.buf.InsertRow(e.buf.Len(), nil)
	}

	e.buf.InsertChar(e.cy, e.cx, c)
	e.cx++
}

// insertNewline splits the current row at the cursor, leaving the cursor at
// the head of the new row.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.buf.InsertRow(e.cy, nil)
	} else {
		row := e.buf.Row(e.cy)
		e.buf.InsertRow(e.cy+1, row.Chars()[e.cx:])
		e.buf.Truncate(e.cy, e.cx)
	}

	e.cy++
	e.cx = 0
}

// deleteChar deletes the byte left of the cursor. At the head of a row the row
// is joined onto the previous one.
func (e *Editor) deleteChar() {
	if e.cy == e.buf.Len() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.buf.DeleteChar(e.cy, e.cx-1)
		e.cx--
		return
	}

	prev := e.buf.Row(e.cy - 1)
	e.cx = prev.Len()
	e.buf.AppendChars(e.cy-1, e.buf.Row(e.cy).Chars())
	e.buf.DeleteRow(e.cy)
	e.cy--
}
