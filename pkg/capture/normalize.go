package capture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"tmux_read/pkg/buffer"
)

// ErrUndecodable is returned when the input is not valid UTF-8 text.
var ErrUndecodable = errors.New("input is not valid UTF-8 text")

// ReadLines reads captured pane text and returns its lines with line
// terminators and trailing whitespace removed. Lines end at "\n"; a carriage
// return inside a line is kept as text. Trailing blank lines are dropped.
//
// When limit is positive only the last limit lines are kept.
func ReadLines(r io.Reader, limit int) ([]string, error) {
	br := bufio.NewReader(r)
	ring := buffer.NewRing(limit)

	// Blank lines are held back until a non-blank line follows them, so
	// trailing blanks never reach the ring.
	blanks := 0

	for {
		chunk, err := br.ReadString('\n')
		if len(chunk) > 0 {
			if !utf8.ValidString(chunk) {
				return nil, ErrUndecodable
			}
			line := trimLine(chunk)
			if line == "" {
				blanks++
			} else {
				for ; blanks > 0; blanks-- {
					ring.Push("")
				}
				ring.Push(line)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}

	return ring.Lines(), nil
}

// trimLine drops the line terminator and any trailing whitespace, which
// includes the "\r" of a "\r\n" ending.
func trimLine(chunk string) string {
	return strings.TrimRightFunc(strings.TrimSuffix(chunk, "\n"), isSpace)
}

// IsBlank reports whether line is empty or whitespace only.
func IsBlank(line string) bool {
	return strings.TrimFunc(line, isSpace) == ""
}

// isSpace matches Unicode whitespace plus the ASCII file, group, record and
// unit separators, which text decoders also strip as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
