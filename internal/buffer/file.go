package buffer

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// ReadFrom appends one row per line read from r. Trailing "\n" and "\r\n"
// are stripped. The buffer is clean afterwards.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	br := bufio.NewReader(r)

	var n int64
	for {
		line, err := br.ReadBytes('\n')
		n += int64(len(line))
		if len(line) > 0 {
			b.InsertRow(len(b.rows), bytes.TrimRight(line, "\r\n"))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return n, errors.Wrap(err, "read")
		}
	}

	b.dirty = 0
	return n, nil
}

// Bytes joins the rows, writing a "\n" after every row including the last.
func (b *Buffer) Bytes() []byte {
	size := 0
	for _, r := range b.rows {
		size += len(r.chars) + 1
	}

	buf := make([]byte, 0, size)
	for _, r := range b.rows {
		buf = append(buf, r.chars...)
		buf = append(buf, '\n')
	}
	return buf
}
