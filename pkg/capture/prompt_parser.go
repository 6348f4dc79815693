package capture

import (
	"strings"
	"unicode/utf8"
)

// signatureLength is how many leading runes of a prompt identify it.
const signatureLength = 5

// Terminator is the trailing symbol of a prompt line and the text before it.
// For "user@host:~$ " the symbol is '$' and the prefix is "user@host:~".
type Terminator struct {
	Symbol rune
	Prefix string
}

// Signature returns the leading runes of the prompt prefix.
func (t Terminator) Signature() string {
	return Signature(t.Prefix)
}

// DetectTerminator reports whether line looks like a shell prompt: it must
// end in a single character that is not an ASCII letter or digit, optionally
// followed by whitespace. Themes using glyphs such as ➜ or λ match as well as
// the usual $, #, % and >.
func DetectTerminator(line string) (Terminator, bool) {
	trimmed := strings.TrimRightFunc(line, isSpace)
	if trimmed == "" {
		return Terminator{}, false
	}

	r, size := utf8.DecodeLastRuneInString(trimmed)
	if isASCIIAlnum(r) {
		return Terminator{}, false
	}

	return Terminator{Symbol: r, Prefix: trimmed[:len(trimmed)-size]}, true
}

// Signature returns the first five runes of prefix, or all of prefix when
// it is shorter.
func Signature(prefix string) string {
	n := 0
	for i := range prefix {
		if n == signatureLength {
			return prefix[:i]
		}
		n++
	}
	return prefix
}

// ExtractCommandFromPrompt returns the command typed after a prompt line's
// terminator. It returns "" if the line has no terminator or nothing was
// typed.
func ExtractCommandFromPrompt(line string, term Terminator) string {
	text := strings.TrimRightFunc(line, isSpace)
	if text == "" {
		return ""
	}

	symbol := string(term.Symbol)
	if rest, ok := strings.CutPrefix(text, term.Prefix+symbol); ok {
		return strings.TrimSpace(rest)
	}

	// Prefix changed (e.g. a different working directory); fall back to the
	// first "symbol + space" after the signature.
	sig := term.Signature()
	if !strings.HasPrefix(text, sig) {
		return ""
	}
	delim := strings.Index(text[len(sig):], symbol+" ")
	if delim == -1 {
		return ""
	}

	return strings.TrimSpace(text[len(sig)+delim+len(symbol):])
}
