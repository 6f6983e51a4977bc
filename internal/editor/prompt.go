package editor

import "github.com/hidetatz/kai/internal/terminal"

// promptObserver is told about every key read while a prompt is active,
// together with the input typed so far.
type promptObserver interface {
	onKey(input string, k terminal.Key)
}

// plainInput is a promptObserver for prompts that only collect a line of text.
type plainInput struct{}

func (plainInput) onKey(string, terminal.Key) {}

// prompt shows format in the message bar, with %s replaced by the input, and
// reads a line of printable text. ok is false if the user pressed ESC.
func (e *Editor) prompt(format string, obs promptObserver) (input string, ok bool, err error) {
	buf := make([]byte, 0, 128)

	for {
		e.setStatus(format, buf)
		if err := e.refreshScreen(); err != nil {
			return "", false, err
		}

		k, err := e.keys.ReadKey()
		if err != nil {
			return "", false, err
		}

		switch {
		case k == terminal.KeyDelete || k == terminal.Ctrl('h') || k == terminal.KeyBackspace:
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case k == terminal.KeyEscape:
			e.setStatus("")
			obs.onKey(string(buf), k)
			return "", false, nil

		case k == terminal.KeyEnter:
			if len(buf) != 0 {
				e.setStatus("")
				obs.onKey(string(buf), k)
				return string(buf), true, nil
			}

		case k.IsPrintable():
			buf = append(buf, byte(k))
		}

		obs.onKey(string(buf), k)
	}
}
