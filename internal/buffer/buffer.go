package buffer

import (
	"slices"
)

// Buffer is the document: rows in line order, plus a count of changes made
// since it was last loaded or saved.
//
// All mutations go through Buffer so render text and the change count never
// go stale. Out of range positions are ignored.
type Buffer struct {
	rows  []*Row
	dirty int
}

func New() *Buffer {
	return &Buffer{}
}

// Len returns the number of rows.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// Row returns the row at index at, or nil if there is none.
func (b *Buffer) Row(at int) *Row {
	if at < 0 || at >= len(b.rows) {
		return nil
	}
	return b.rows[at]
}

// Dirty reports whether the buffer has unsaved changes.
func (b *Buffer) Dirty() bool {
	return b.dirty > 0
}

// Changes returns the number of changes since the buffer was last clean.
func (b *Buffer) Changes() int {
	return b.dirty
}

// MarkClean forgets all changes, e.g. after a save.
func (b *Buffer) MarkClean() {
	b.dirty = 0
}

func (b *Buffer) InsertRow(at int, s []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}

	b.rows = slices.Insert(b.rows, at, newRow(s))
	b.dirty++
}

func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}

	b.rows = slices.Delete(b.rows, at, at+1)
	b.dirty++
}

// InsertChar inserts c into row at column col. A column out of range means
// the end of the row.
func (b *Buffer) InsertChar(row, col int, c byte) {
	r := b.Row(row)
	if r == nil {
		return
	}

	if col < 0 || col > len(r.chars) {
		col = len(r.chars)
	}

	r.chars = slices.Insert(r.chars, col, c)
	r.update()
	b.dirty++
}

// AppendChars adds s to the end of row.
func (b *Buffer) AppendChars(row int, s []byte) {
	r := b.Row(row)
	if r == nil {
		return
	}

	r.chars = append(r.chars, s...)
	r.update()
	b.dirty++
}

func (b *Buffer) DeleteChar(row, col int) {
	r := b.Row(row)
	if r == nil || col < 0 || col >= len(r.chars) {
		return
	}

	r.chars = slices.Delete(r.chars, col, col+1)
	r.update()
	b.dirty++
}

// Truncate cuts row down to its first n bytes.
func (b *Buffer) Truncate(row, n int) {
	r := b.Row(row)
	if r == nil || n < 0 || n >= len(r.chars) {
		return
	}

	r.chars = r.chars[:n:n]
	r.update()
	b.dirty++
}
