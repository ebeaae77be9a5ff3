// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"unicode/utf8"

	"github.com/vesper-lang/vesperc/internal/token"
)

const (
	lineSeparator      rune = 0x2028
	paragraphSeparator rune = 0x2029
)

// byteAt indexes src defensively. The buffer always carries a trailing
// sentinel, so in-bounds scanning never needs this, but a one- or
// two-byte lookahead computed right at the sentinel can walk past the
// slice; returning 0 there is equivalent to hitting end-of-input a byte
// early, which the dispatcher already treats as EOF.
func (l *Lexer) byteAt(i int) byte {
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) cur() byte       { return l.byteAt(l.p) }
func (l *Lexer) peekByte() byte  { return l.byteAt(l.p + 1) }
func (l *Lexer) peekByte2() byte { return l.byteAt(l.p + 2) }

func (l *Lexer) atEOFByte(b byte) bool { return b == 0 || b == 0x1A }

// atEOF reports whether the cursor currently sits on the sentinel (or a
// raw NUL), the lexer's end-of-input condition.
func (l *Lexer) atEOF() bool { return l.atEOFByte(l.cur()) }

func (l *Lexer) advance() {
	l.p++
}

// column computes charnum as 1 + (p - line), matching the data model's
// on-demand column computation exactly.
func (l *Lexer) column() int32 {
	return int32(1 + (l.p - l.lineStart))
}

func (l *Lexer) loc() token.Location {
	return token.Location{Filename: l.filename, Line: l.line, Column: l.column()}
}

// newline advances the line counter and resets the line-start cursor.
// Call it immediately after consuming the newline byte(s) so that column
// computation for the next token starts fresh at column 1.
func (l *Lexer) newline() {
	l.line++
	l.lineStart = l.p
	l.sawTokenLine = false
}

// decodeRuneAt decodes one UTF-8 rune starting at src[i], using
// unicode/utf8 directly rather than a hand-rolled decoder. It returns a
// zero size when i is out of range or the bytes there don't decode.
func (l *Lexer) decodeRuneAt(i int) (rune, int) {
	if i < 0 || i >= len(l.src) {
		return 0, 0
	}
	r, size := utf8.DecodeRune(l.src[i:])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0
	}
	return r, size
}

// skipLineBreak consumes one line terminator starting at the cursor if
// present (\n, \r, \r\n, U+2028, U+2029) and updates line tracking. It
// reports whether a line break was consumed.
func (l *Lexer) skipLineBreak() bool {
	switch l.cur() {
	case '\n':
		l.advance()
		l.newline()
		return true
	case '\r':
		l.advance()
		if l.cur() == '\n' {
			l.advance()
		}
		l.newline()
		return true
	}
	if r, size := l.decodeRuneAt(l.p); size > 0 && (r == lineSeparator || r == paragraphSeparator) {
		l.p += size
		l.newline()
		return true
	}
	return false
}
