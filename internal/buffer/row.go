// Package buffer holds the document being edited as an ordered list of rows.
package buffer

import (
	"bytes"
)

// TabStop is the render width a tab advances to.
const TabStop = 4

// Row is one line of the document. chars are the bytes as stored on disk
// without the line terminator; render is chars with tabs expanded to spaces.
type Row struct {
	chars  []byte
	render []byte
}

func newRow(s []byte) *Row {
	r := &Row{chars: bytes.Clone(s)}
	if r.chars == nil {
		r.chars = []byte{}
	}
	r.update()
	return r
}

// Chars returns the raw bytes of the row. The caller must not modify them.
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the row as it is drawn on screen. The caller must not modify it.
func (r *Row) Render() []byte {
	return r.render
}

// Len is the number of raw bytes in the row.
func (r *Row) Len() int {
	return len(r.chars)
}

// update recomputes render from chars. It must run after every change to chars.
func (r *Row) update() {
	tabs := bytes.Count(r.chars, []byte{'\t'})
	render := make([]byte, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}

		render = append(render, ' ')
		for len(render)%TabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.render = render
}

// CxToRx converts a raw column to the column it is drawn at.
func (r *Row) CxToRx(cx int) int {
	cx = min(max(cx, 0), len(r.chars))

	rx := 0
	for _, c := range r.chars[:cx] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a render column back to a raw column: the first byte whose
// rendered extent passes rx. Past the end of the row it returns Len.
func (r *Row) RxToCx(rx int) int {
	cur := 0
	for cx, c := range r.chars {
		if c == '\t' {
			cur += (TabStop - 1) - (cur % TabStop)
		}
		cur++

		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}

// Index returns the render offset of the first occurrence of query, or -1.
func (r *Row) Index(query []byte) int {
	return bytes.Index(r.render, query)
}
