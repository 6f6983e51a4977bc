package editor

import (
	"io"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// Open loads path into the editor. The document is clean afterwards.
func (e *Editor) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "fopen")
	}
	defer f.Close()

	e.filename = path
	if _, err := e.buf.ReadFrom(f); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	e.log.Info("opened file", "path", path, "rows", e.buf.Len())
	return nil
}

// save writes the document to its file, asking for a name first if it has
// none. Failures are reported in the message bar; only a failure to read
// keys for the prompt is returned.
func (e *Editor) save() error {
	if e.filename == "" {
		name, ok, err := e.prompt("Save as: %s (ESC to cancel)", plainInput{})
		if err != nil {
			return err
		}
		if !ok {
			e.setStatus("Save aborted")
			return nil
		}
		e.filename = name
	}

	data := e.buf.Bytes()
	if err := writeFile(e.filename, data); err != nil {
		e.log.Error("save failed", "path", e.filename, "err", err)
		e.setStatus("Can't save! I/O error: %s", describe(err))
		return nil
	}

	e.buf.MarkClean()
	e.log.Info("saved file", "path", e.filename, "bytes", len(data))
	e.setStatus("%d bytes written to disk", len(data))
	return nil
}

// writeFile truncates path to the size of data and then writes it in place.
func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrap(err, "open")
	}

	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return errors.Wrap(err, "ftruncate")
	}

	n, err := f.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		f.Close()
		return errors.Wrap(err, "write")
	}

	return errors.Wrap(f.Close(), "close")
}

// describe returns the OS description of err, like strerror.
func describe(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}
	return errors.Cause(err).Error()
}
