// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"github.com/vesper-lang/vesperc/internal/charclass"
	"github.com/vesper-lang/vesperc/internal/diag"
	"github.com/vesper-lang/vesperc/internal/token"
)

// readPostfix consumes a trailing c/w/d character-width hint, if
// present, after a string literal's closing delimiter.
func (l *Lexer) readPostfix() token.Postfix {
	switch l.cur() {
	case 'c':
		l.advance()
		return token.PostfixChar
	case 'w':
		l.advance()
		return token.PostfixWide
	case 'd':
		l.advance()
		return token.PostfixDchr
	}
	return token.PostfixNone
}

// copyRune writes r into the lexer's scratch buffer, re-encoding it as
// UTF-8 regardless of how it was decoded.
func (l *Lexer) copyRune(r rune) {
	l.scratch.WriteRune(r)
}

// scanEscapedString scans "…" with full \escape processing, after the
// opening quote has already been consumed.
func (l *Lexer) scanEscapedString(loc token.Location) *token.Token {
	l.scratch.Reset()
	for {
		if l.atEOF() {
			l.fail(diag.CodeUnterminatedString, "unterminated string constant starting at %d:%d", loc.Line, loc.Column)
			break
		}
		if l.cur() == '"' {
			l.advance()
			break
		}
		if l.skipLineBreakInto() {
			continue
		}
		if l.cur() == '\\' {
			l.advance()
			r, _ := l.readEscape()
			l.copyRune(r)
			continue
		}
		l.copyLiteralByte()
	}
	postfix := l.readPostfix()
	return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
}

// skipLineBreakInto consumes a line terminator the same way skipLineBreak
// does, but also normalizes it to \n in the scratch buffer.
func (l *Lexer) skipLineBreakInto() bool {
	switch l.cur() {
	case '\n', '\r':
		if !l.skipLineBreak() {
			return false
		}
		l.scratch.WriteByte('\n')
		return true
	}
	if r, size := l.decodeRuneAt(l.p); size > 0 && (r == lineSeparator || r == paragraphSeparator) {
		l.p += size
		l.newline()
		l.scratch.WriteByte('\n')
		return true
	}
	return false
}

// copyLiteralByte copies one source character into the scratch buffer
// verbatim, decoding non-ASCII bytes and re-encoding them as UTF-8.
func (l *Lexer) copyLiteralByte() {
	if l.cur() < 0x80 {
		l.scratch.WriteByte(l.cur())
		l.advance()
		return
	}
	r, size := l.decodeRuneAt(l.p)
	if size == 0 {
		l.fail(diag.CodeInvalidUTF8, "invalid UTF-8 sequence in string literal")
		l.advance()
		return
	}
	l.p += size
	l.copyRune(r)
}

// scanWysiwygString scans r"…" or `…`; no escape processing. closer is
// the byte that must match the opener: '"' for r"…", '`' for `…`.
func (l *Lexer) scanWysiwygString(loc token.Location, closer byte) *token.Token {
	l.scratch.Reset()
	for {
		if l.atEOF() {
			l.fail(diag.CodeUnterminatedString, "unterminated string constant starting at %d:%d", loc.Line, loc.Column)
			break
		}
		if l.cur() == closer {
			l.advance()
			break
		}
		if l.skipLineBreakInto() {
			continue
		}
		l.copyLiteralByte()
	}
	postfix := l.readPostfix()
	return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
}

// scanHexString scans x"…": hex digits and whitespace pair into bytes; an
// odd digit count is diagnosed but the final nibble is still written.
func (l *Lexer) scanHexString(loc token.Location) *token.Token {
	l.scratch.Reset()
	var nibbles []byte
	for {
		if l.atEOF() {
			l.fail(diag.CodeUnterminatedString, "unterminated hex string constant starting at %d:%d", loc.Line, loc.Column)
			break
		}
		if l.cur() == '"' {
			l.advance()
			break
		}
		if l.skipLineBreak() {
			continue
		}
		if charclass.IsWhitespace(l.cur()) {
			l.advance()
			continue
		}
		if charclass.IsHexDigit(l.cur()) {
			nibbles = append(nibbles, byte(digitValue(l.cur())))
			l.advance()
			continue
		}
		l.fail(diag.CodeInvalidEscape, "invalid character %q in hex string literal", l.cur())
		l.advance()
	}
	if len(nibbles)%2 != 0 {
		l.fail(diag.CodeOddHexStringDigits, "hex string literal has an odd number of digits")
	}
	for i := 0; i+1 < len(nibbles); i += 2 {
		l.scratch.WriteByte(nibbles[i]<<4 | nibbles[i+1])
	}
	if len(nibbles)%2 == 1 {
		l.scratch.WriteByte(nibbles[len(nibbles)-1] << 4)
	}
	postfix := l.readPostfix()
	return &token.Token{Kind: token.KindHexString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
}

// scanDelimitedString scans q"…" in its three delimiter forms: bracketed
// with nesting, heredoc, or single-char.
func (l *Lexer) scanDelimitedString(loc token.Location) *token.Token {
	l.scratch.Reset()

	for charclass.IsWhitespace(l.cur()) {
		l.advance()
	}

	switch l.cur() {
	case '(', '[', '{', '<':
		return l.scanBracketedDelimited(loc)
	case '"':
		l.fail(diag.CodeWhitespaceDelimiter, "whitespace is not a valid delimited-string delimiter")
		l.advance()
		postfix := l.readPostfix()
		return &token.Token{Kind: token.KindString, Loc: loc, StringValue: "", Postfix: postfix}
	}

	if r, _ := l.decodeRuneAt(l.p); charclass.IsIdentStart(r) {
		return l.scanHeredocDelimited(loc)
	}
	return l.scanSingleCharDelimited(loc)
}

var bracketClose = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

func (l *Lexer) scanBracketedDelimited(loc token.Location) *token.Token {
	open := l.cur()
	close := bracketClose[open]
	l.advance()
	depth := 1
	for {
		if l.atEOF() {
			l.fail(diag.CodeUnterminatedString, "unterminated delimited string constant starting at %d:%d", loc.Line, loc.Column)
			break
		}
		if l.skipLineBreakInto() {
			continue
		}
		switch l.cur() {
		case open:
			depth++
			l.copyLiteralByte()
		case close:
			depth--
			if depth == 0 {
				l.advance()
				if l.cur() == '"' {
					l.advance()
				} else {
					l.fail(diag.CodeUnterminatedString, "missing closing quote after delimited string")
				}
				postfix := l.readPostfix()
				return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
			}
			l.copyLiteralByte()
		default:
			l.copyLiteralByte()
		}
	}
	postfix := l.readPostfix()
	return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
}

func (l *Lexer) scanHeredocDelimited(loc token.Location) *token.Token {
	idStart := l.p
	for charclass.IsIdentCont(rune(l.cur())) {
		l.advance()
	}
	sentinel := string(l.src[idStart:l.p])

	for l.cur() != '\n' && l.cur() != '\r' && !l.atEOF() {
		if !charclass.IsWhitespace(l.cur()) {
			l.fail(diag.CodeInvalidToken, "rest of line should be blank after heredoc delimiter identifier")
			break
		}
		l.advance()
	}
	// Only the first non-blank trailing line produces a diagnostic;
	// scanning continues regardless.
	l.skipLineBreak()

	for {
		if l.atEOF() {
			l.fail(diag.CodeUnterminatedString, "unterminated heredoc string constant starting at %d:%d", loc.Line, loc.Column)
			break
		}
		lineStart := l.p
		if len(l.src)-lineStart >= len(sentinel) && string(l.src[lineStart:lineStart+len(sentinel)]) == sentinel {
			l.p += len(sentinel)
			if l.cur() == '"' {
				l.advance()
			} else {
				l.fail(diag.CodeUnterminatedString, "missing closing quote after heredoc string")
			}
			postfix := l.readPostfix()
			return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
		}
		for l.cur() != '\n' && l.cur() != '\r' && !l.atEOF() {
			l.copyLiteralByte()
		}
		if l.skipLineBreak() {
			l.scratch.WriteByte('\n')
		}
	}
	postfix := l.readPostfix()
	return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
}

func (l *Lexer) scanSingleCharDelimited(loc token.Location) *token.Token {
	open, size := l.decodeRuneAt(l.p)
	if size == 0 {
		open, size = rune(l.cur()), 1
	}
	l.p += size
	for {
		if l.atEOF() {
			l.fail(diag.CodeUnterminatedString, "unterminated delimited string constant starting at %d:%d", loc.Line, loc.Column)
			break
		}
		if r, rsize := l.decodeRuneAt(l.p); rsize > 0 && r == open {
			l.p += rsize
			if l.cur() == '"' {
				l.advance()
			} else {
				l.fail(diag.CodeUnterminatedString, "missing closing quote after delimited string")
			}
			postfix := l.readPostfix()
			return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
		}
		if l.skipLineBreakInto() {
			continue
		}
		l.copyLiteralByte()
	}
	postfix := l.readPostfix()
	return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.scratch.String(), Postfix: postfix}
}

// scanTokenString scans q{…} by recursively invoking the dispatcher
// itself, counting { and } tokens and keeping the raw byte range between
// the opening { (already consumed by the caller) and the matching }.
func (l *Lexer) scanTokenString(loc token.Location) *token.Token {
	bodyStart := l.p
	depth := 1
	for depth > 0 {
		inner := l.scanToken()
		switch inner.Kind {
		case token.KindLBrace:
			depth++
		case token.KindRBrace:
			depth--
		case token.KindEOF:
			l.fail(diag.CodeUnterminatedString, "unterminated token string constant starting at %d:%d", loc.Line, loc.Column)
			postfix := l.readPostfix()
			return &token.Token{Kind: token.KindString, Loc: loc, StringValue: string(l.src[bodyStart:l.p]), Postfix: postfix}
		}
	}
	bodyEnd := l.p - 1 // exclude the matching }
	postfix := l.readPostfix()
	return &token.Token{Kind: token.KindString, Loc: loc, StringValue: string(l.src[bodyStart:bodyEnd]), Postfix: postfix}
}
