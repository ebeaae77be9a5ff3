// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"strings"

	"github.com/vesper-lang/vesperc/internal/diag"
	"github.com/vesper-lang/vesperc/internal/optional"
	"github.com/vesper-lang/vesperc/internal/token"
)

// scanLineComment consumes a //... comment up to (but not including) the
// terminating line break or EOF.
func (l *Lexer) scanLineComment() string {
	start := l.p
	for !l.atEOF() && l.cur() != '\n' && l.cur() != '\r' {
		if r, size := l.decodeRuneAt(l.p); size > 1 && (r == lineSeparator || r == paragraphSeparator) {
			break
		}
		l.advance()
	}
	return string(l.src[start:l.p])
}

// scanBlockComment consumes a comment body up to its closer. nesting
// selects between /* */ (non-nesting) and /+ +/ (nesting, per section
// 4.9). The opener's two bytes must already be consumed by the caller.
func (l *Lexer) scanBlockComment(loc token.Location, nesting bool) string {
	open, close := byte('*'), byte('/')
	if nesting {
		open, close = '+', '/'
	}
	depth := 1
	var b strings.Builder
	for {
		if l.atEOF() {
			l.fail(diag.CodeUnterminatedComment, "unterminated comment starting at %d:%d", loc.Line, loc.Column)
			return b.String()
		}
		if l.skipLineBreak() {
			b.WriteByte('\n')
			continue
		}
		if nesting && l.cur() == '/' && l.peekByte() == open {
			l.advance()
			l.advance()
			depth++
			b.WriteByte('/')
			b.WriteByte(open)
			continue
		}
		if l.cur() == open && l.peekByte() == close {
			l.advance()
			l.advance()
			depth--
			if depth == 0 {
				return b.String()
			}
			b.WriteByte(open)
			b.WriteByte(close)
			continue
		}
		b.WriteByte(l.cur())
		l.advance()
	}
}

// isDocOpener reports whether the three-byte comment opener (the two
// slashes/pluses already consumed, plus the byte now at the cursor)
// marks a doc comment: /** or /++, excluding the degenerate /**/ and
// /++/ forms.
func isDocOpener(fill byte, third byte, fourth byte) bool {
	if third != fill {
		return false
	}
	if fourth == '/' {
		return false
	}
	return true
}

// attachDoc stores a canonicalized doc comment body to be picked up by
// the next non-comment token, as lineComment if a token has already
// appeared on the current source line, or blockComment otherwise.
// Adjacent doc comments destined for the same slot are joined with "\n",
// or "\n\n" when blankLineBefore is set. The comment scanner always
// passes false, so a blank line between two doc comments is not
// detected and they are joined with a single "\n".
func (l *Lexer) attachDoc(body string, fill byte, blankLineBefore bool) {
	canon := canonicalizeDoc(body, fill)
	slot := &l.pendingBlock
	if l.sawTokenLine {
		slot = &l.pendingLine
	}
	if slot.IsPresent() {
		sep := "\n"
		if blankLineBefore {
			sep = "\n\n"
		}
		*slot = optional.Some(slot.Value() + sep + canon)
		return
	}
	*slot = optional.Some(canon)
}

// canonicalizeDoc strips the leading row of fill characters, then on
// each line strips one leading fill byte if present, normalizes line
// endings, trims trailing whitespace per line, and ensures a trailing
// newline.
func canonicalizeDoc(body string, fill byte) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")
	body = strings.TrimLeft(body, string(fill))

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if len(trimmed) > 0 && trimmed[0] == fill {
			trimmed = trimmed[1:]
		}
		lines[i] = strings.TrimRight(trimmed, " \t")
	}
	out := strings.Join(lines, "\n")
	out = strings.TrimRight(out, "\n")
	return out + "\n"
}

// takePendingDoc drains any doc comment accumulated since the last
// non-comment token and attaches it to tok.
func (l *Lexer) takePendingDoc(tok *token.Token) {
	if l.pendingBlock.IsPresent() {
		tok.BlockComment = l.pendingBlock
		l.pendingBlock = optional.None[string]()
	}
	if l.pendingLine.IsPresent() {
		tok.LineComment = l.pendingLine
		l.pendingLine = optional.None[string]()
	}
	l.sawTokenLine = true
}
