package capture

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MatchMode selects how the backward scan recognises the previous prompt.
type MatchMode int

const (
	// MatchSignature accepts a line containing the terminator symbol and
	// starting with the prompt signature. Output lines that happen to pass
	// both checks are mistaken for a prompt.
	MatchSignature MatchMode = iota
	// MatchStrict accepts only a line starting with the full prompt prefix
	// immediately followed by the terminator symbol.
	MatchStrict
)

func (m MatchMode) String() string {
	switch m {
	case MatchStrict:
		return "strict"
	default:
		return "signature"
	}
}

// Options tunes Extract.
type Options struct {
	Mode MatchMode
}

// Extraction is the output window of the last command plus what was learned
// while locating it.
type Extraction struct {
	// Lines is the command output with outer blank lines removed.
	Lines []string
	// Prompt is the current prompt, the last non-blank input line.
	Prompt string
	// Terminator is only meaningful when Matched is true.
	Terminator Terminator
	Matched    bool
	// Boundary is the index of the first candidate output line.
	Boundary int
	// PreviousPrompt is the index of the previous prompt line, or -1.
	PreviousPrompt int
	// Command is the text typed after the previous prompt, if any.
	Command string
}

// Extract locates the output of the most recent command in lines. The last
// non-blank line is taken as the current prompt and is never part of the
// output. If it does not end in a terminator, or no earlier line looks like
// the same prompt, everything above it is returned.
func Extract(lines []string, opts Options) Extraction {
	ex := Extraction{PreviousPrompt: -1}

	lines = trimTrailingBlank(lines)
	if len(lines) == 0 {
		return ex
	}

	last := len(lines) - 1
	ex.Prompt = lines[last]
	ex.Terminator, ex.Matched = DetectTerminator(ex.Prompt)
	if ex.Matched {
		ex.Boundary, ex.PreviousPrompt = FindBoundary(lines, ex.Terminator, opts.Mode)
		if ex.PreviousPrompt >= 0 {
			ex.Command = ExtractCommandFromPrompt(lines[ex.PreviousPrompt], ex.Terminator)
		}
	}

	ex.Lines = TrimBlank(lines[ex.Boundary:last])
	return ex
}

// FindBoundary scans upward from the line above the current prompt and
// returns the index just past the nearest line that looks like an earlier
// prompt, together with that line's index. It returns (0, -1) when no line
// qualifies.
func FindBoundary(lines []string, term Terminator, mode MatchMode) (int, int) {
	symbol := string(term.Symbol)
	sig := term.Signature()
	full := term.Prefix + symbol

	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]

		if mode == MatchStrict {
			if !strings.HasPrefix(line, full) {
				continue
			}
			return i + 1, i
		}

		if !strings.Contains(line, symbol) {
			continue
		}
		// Filters out output such as "echo $PATH" that lacks the prompt's
		// user@host style lead.
		if sig != "" && !strings.HasPrefix(line, sig) {
			continue
		}
		return i + 1, i
	}

	return 0, -1
}

// TrimBlank drops blank lines from both ends of lines.
func TrimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && IsBlank(lines[start]) {
		start++
	}
	for end > start && IsBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && IsBlank(lines[end-1]) {
		end--
	}
	return lines[:end]
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
