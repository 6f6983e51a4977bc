package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the terminal attributes of in while the editor runs.
type Session struct {
	in   *os.File
	out  *os.File
	orig *unix.Termios
}

func NewSession(in, out *os.File) *Session {
	return &Session{in: in, out: out}
}

// EnableRawMode saves the current terminal attributes and switches in to raw
// mode: no echo, no line buffering, no signals, no output processing, and a
// read timeout of 100ms.
func (s *Session) EnableRawMode() error {
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("tcgetattr: stdin is not a terminal")
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return errors.Wrap(err, "tcgetattr")
	}

	// see https://github.com/antirez/kilo/blob/master/kilo.c#L226-L239
	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return errors.Wrap(err, "tcsetattr")
	}

	s.orig = orig
	return nil
}

// Restore puts back the attributes saved by EnableRawMode. Calling it more
// than once is harmless.
func (s *Session) Restore() error {
	if s.orig == nil {
		return nil
	}

	if err := unix.IoctlSetTermios(int(s.in.Fd()), ioctlWriteTermios, s.orig); err != nil {
		return errors.Wrap(err, "tcsetattr")
	}

	s.orig = nil
	return nil
}

// WindowSize returns the size of the terminal. If the ioctl is unavailable the
// cursor is pushed to the bottom-right corner and its position is queried.
func (s *Session) WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(s.out.Fd()))
	if err == nil && cols != 0 {
		return rows, cols, nil
	}

	if _, err := io.WriteString(s.out, cursorToCorner); err != nil {
		return 0, 0, errors.Wrap(err, "getWindowSize")
	}

	rows, cols, err = cursorPosition(s.in, s.out)
	if err != nil {
		return 0, 0, errors.Wrap(err, "getWindowSize")
	}
	return rows, cols, nil
}

// cursorPosition asks the terminal where the cursor is and parses the
// "ESC [ rows ; cols R" reply.
func cursorPosition(r io.Reader, w io.Writer) (rows, cols int, err error) {
	if _, err := io.WriteString(w, deviceStatusReport); err != nil {
		return 0, 0, errors.Wrap(err, "write")
	}

	reply := make([]byte, 0, 32)
	b := make([]byte, 1)
	for len(reply) < cap(reply)-1 {
		if n, _ := r.Read(b); n != 1 || b[0] == 'R' {
			break
		}
		reply = append(reply, b[0])
	}

	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, errors.Errorf("unexpected cursor position report %q", reply)
	}

	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, errors.Wrapf(err, "parse cursor position report %q", reply)
	}

	return rows, cols, nil
}
