package terminal

import "fmt"

// Key is one logical key press: either a literal byte (0-255) or one of the
// symbolic keys decoded from an escape sequence.
type Key int

const (
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 127
)

// symbolic keys are outside the byte range
const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Ctrl returns the key sent when k is pressed together with Ctrl.
func Ctrl(k byte) Key {
	return Key(k & 0x1f)
}

// IsPrintable reports whether k is a printable ASCII character.
func (k Key) IsPrintable() bool {
	return k >= 0x20 && k < 0x7f
}

func (k Key) String() string {
	switch k {
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	}

	if k.IsPrintable() {
		return string(rune(k))
	}
	if k >= 0 && k < 0x20 {
		return fmt.Sprintf("Ctrl-%c", rune(k+'@'))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
