package editor

import "github.com/hidetatz/kai/internal/terminal"

// searcher moves the cursor to matches of the query while it is being typed.
// Arrow keys step to the next (Right/Down) or previous (Left/Up) match,
// wrapping around the document.
type searcher struct {
	e *Editor

	// row of the last match, -1 if none
	lastMatch int
	direction int
}

func newSearcher(e *Editor) *searcher {
	return &searcher{e: e, lastMatch: -1, direction: 1}
}

func (s *searcher) onKey(query string, k terminal.Key) {
	switch k {
	case terminal.KeyEnter, terminal.KeyEscape:
		s.lastMatch = -1
		s.direction = 1
		return
	case terminal.KeyArrowRight, terminal.KeyArrowDown:
		s.direction = 1
	case terminal.KeyArrowLeft, terminal.KeyArrowUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if s.lastMatch == -1 {
		s.direction = 1
	}

	e := s.e
	n := e.buf.Len()
	current := s.lastMatch
	for range n {
		current += s.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		row := e.buf.Row(current)
		match := row.Index([]byte(query))
		if match == -1 {
			continue
		}

		s.lastMatch = current
		e.cy = current
		e.cx = row.RxToCx(match)
		// scroll() puts the match at the top of the screen
		e.rowoff = n
		e.log.Debug("search hit", "query", query, "row", current, "col", e.cx)
		return
	}
}

// find runs an incremental search. Cancelling puts the cursor and viewport
// back where they were.
func (e *Editor) find() error {
	cx, cy := e.cx, e.cy
	rowoff, coloff := e.rowoff, e.coloff

	_, ok, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)", newSearcher(e))
	if err != nil {
		return err
	}

	if !ok {
		e.cx, e.cy = cx, cy
		e.rowoff, e.coloff = rowoff, coloff
	}
	return nil
}
