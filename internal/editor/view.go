package editor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hidetatz/kai/internal/terminal"
)

// scroll moves the viewport just enough to keep the cursor on screen.
func (e *Editor) scroll() {
	e.rx = 0
	if row := e.buf.Row(e.cy); row != nil {
		e.rx = row.CxToRx(e.cx)
	}

	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenRows {
		e.rowoff = e.cy - e.screenRows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screenCols {
		e.coloff = e.rx - e.screenCols + 1
	}
}

// refreshScreen redraws the whole screen with a single write.
func (e *Editor) refreshScreen() error {
	e.scroll()

	var b bytes.Buffer
	b.WriteString(terminal.HideCursor)
	b.WriteString(terminal.CursorHome)

	e.drawRows(&b)
	e.drawStatusBar(&b)
	e.drawMessageBar(&b)

	b.WriteString(terminal.MoveCursor(e.rx-e.coloff, e.cy-e.rowoff))
	b.WriteString(terminal.ShowCursor)

	_, err := e.out.Write(b.Bytes())
	return errors.Wrap(err, "write")
}

func (e *Editor) drawRows(b *bytes.Buffer) {
	for y := range e.screenRows {
		filerow := y + e.rowoff

		if row := e.buf.Row(filerow); row != nil {
			render := row.Render()
			if e.coloff < len(render) {
				b.Write(render[e.coloff:min(len(render), e.coloff+e.screenCols)])
			}
		} else if e.buf.Len() == 0 && y == e.screenRows/2 {
			e.drawWelcome(b)
		} else {
			b.WriteByte('~')
		}

		b.WriteString(terminal.ClearLine)
		b.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(b *bytes.Buffer) {
	welcome := fmt.Sprintf("Kai editor -- version %s", Version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}

	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(welcome)
}

func (e *Editor) drawStatusBar(b *bytes.Buffer) {
	b.WriteString(terminal.InvertColors)

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.buf.Dirty() {
		modified = "(modified)"
	}

	status := fmt.Sprintf("%.20s - %d lines %s", name, e.buf.Len(), modified)
	rstatus := fmt.Sprintf("%d:%d/%d", e.cy+1, e.cx+1, e.buf.Len())
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	b.WriteString(status)

	// right-align the cursor position if it fits
	for n := len(status); n < e.screenCols; n++ {
		if e.screenCols-n == len(rstatus) {
			b.WriteString(rstatus)
			break
		}
		b.WriteByte(' ')
	}

	b.WriteString(terminal.ResetColors)
	b.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(b *bytes.Buffer) {
	b.WriteString(terminal.ClearLine)

	msg := e.statusmsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && e.now().Sub(e.statusmsgTime) < statusTimeout {
		b.WriteString(msg)
	}
}

// setStatus shows a message in the message bar for a few seconds.
func (e *Editor) setStatus(format string, a ...any) {
	e.statusmsg = fmt.Sprintf(format, a...)
	e.statusmsgTime = e.now()
}
