package terminal

import (
	"io"
	"syscall"

	"github.com/pkg/errors"
)

// Decoder reads key presses from a raw terminal.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// readByte performs one timeout-bounded read. ok is false if the read timed out.
func (d *Decoder) readByte() (b byte, ok bool, err error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}

	// A tty read that hits VTIME returns 0 bytes, which os.File reports as io.EOF.
	if err == nil || err == io.EOF || errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR) {
		return 0, false, nil
	}

	return 0, false, errors.Wrap(err, "read")
}

// ReadKey blocks until a key is pressed and returns it. Escape sequences for
// arrows, Home, End, Delete and Page Up/Down become symbolic keys; anything
// incomplete or unknown is reported as KeyEscape.
func (d *Decoder) ReadKey() (Key, error) {
	var c byte
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if ok {
			c = b
			break
		}
	}

	if c != 0x1b {
		return Key(c), nil
	}

	var seq [3]byte
	for i := range 2 {
		b, ok, _ := d.readByte()
		if !ok {
			return KeyEscape, nil
		}
		seq[i] = b
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			b, ok, _ := d.readByte()
			if !ok || b != '~' {
				return KeyEscape, nil
			}

			switch seq[1] {
			case '1', '7':
				return KeyHome, nil
			case '3':
				return KeyDelete, nil
			case '4', '8':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
			return KeyEscape, nil
		}

		switch seq[1] {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}

	case 'O':
		switch seq[1] {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	}

	return KeyEscape, nil
}
