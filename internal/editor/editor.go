// Package editor implements the interactive part of kai: the cursor and
// viewport over a buffer.Buffer, key dispatch, the prompt, search and saving.
//
// The editor is single threaded. Run alternates between drawing a frame and
// blocking for one key; a prompt takes over that loop until it is confirmed
// or cancelled.
package editor

import (
	"io"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/hidetatz/kai/internal/buffer"
	"github.com/hidetatz/kai/internal/terminal"
)

const (
	Version = "0.0.1"

	// how many times Ctrl-Q has to be pressed to drop unsaved changes
	quitTimes = 3

	statusTimeout = 5 * time.Second

	helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"
)

// KeyReader is where key presses come from, normally a *terminal.Decoder.
type KeyReader interface {
	ReadKey() (terminal.Key, error)
}

type Config struct {
	// Rows and Cols are the terminal size. Two rows are kept for the status
	// and message bars.
	Rows, Cols int

	Keys KeyReader
	Out  io.Writer

	// Logger defaults to discarding everything.
	Logger log15.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

type Editor struct {
	buf *buffer.Buffer

	// cursor: cx, cy index chars; rx is cx in render columns.
	cx, cy int
	rx     int

	// viewport
	rowoff, coloff         int
	screenRows, screenCols int

	filename      string
	statusmsg     string
	statusmsgTime time.Time

	quitTimes int

	keys KeyReader
	out  io.Writer
	now  func() time.Time
	log  log15.Logger
}

func New(cfg Config) *Editor {
	logger := cfg.Logger
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	e := &Editor{
		buf:        buffer.New(),
		screenRows: max(cfg.Rows-2, 1),
		screenCols: max(cfg.Cols, 1),
		quitTimes:  quitTimes,
		keys:       cfg.Keys,
		out:        cfg.Out,
		now:        now,
		log:        logger,
	}
	e.setStatus(helpMessage)
	return e
}

// Run draws the screen and handles keys until the user quits. The screen is
// cleared on quit. Any error is fatal to the editor.
func (e *Editor) Run() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return err
		}

		quit, err := e.processKeypress()
		if err != nil {
			return err
		}

		if quit {
			e.log.Info("quit", "dirty", e.buf.Dirty())
			return errors.Wrap(terminal.Reset(e.out), "write")
		}
	}
}

// processKeypress reads one key and acts on it. It reports whether the
// editor should quit.
func (e *Editor) processKeypress() (bool, error) {
	k, err := e.keys.ReadKey()
	if err != nil {
		return false, err
	}

	switch k {
	case terminal.KeyEnter:
		e.insertNewline()

	case terminal.Ctrl('q'):
		if e.buf.Dirty() {
			e.quitTimes--
			if e.quitTimes > 0 {
				e.setStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
				return false, nil
			}
		}
		return true, nil

	case terminal.Ctrl('s'):
		if err := e.save(); err != nil {
			return false, err
		}

	case terminal.Ctrl('f'):
		if err := e.find(); err != nil {
			return false, err
		}

	case terminal.KeyHome:
		e.cx = 0

	case terminal.KeyEnd:
		if row := e.buf.Row(e.cy); row != nil {
			e.cx = row.Len()
		}

	case terminal.KeyBackspace, terminal.Ctrl('h'), terminal.KeyDelete:
		if k == terminal.KeyDelete {
			e.moveCursor(terminal.KeyArrowRight)
		}
		e.deleteChar()

	case terminal.KeyPageUp, terminal.KeyPageDown:
		e.movePage(k)

	case terminal.KeyArrowUp, terminal.KeyArrowDown, terminal.KeyArrowLeft, terminal.KeyArrowRight:
		e.moveCursor(k)

	case terminal.Ctrl('l'), terminal.KeyEscape:
		// nothing to do

	default:
		if k >= 0 && k <= 0xff {
			e.insertChar(byte(k))
		}
	}

	e.quitTimes = quitTimes
	return false, nil
}
