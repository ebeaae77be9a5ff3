// SPDX-License-Identifier: Apache-2.0

package lexer

import "github.com/vesper-lang/vesperc/internal/token"

// The lexer's token lookahead cache is a growable FIFO slice rather than a
// linked list: Go's append already amortizes the allocation pattern, and a
// slice gives PeekPastParen unbounded lookahead for free, which a
// fixed-depth wrapper like internal/iterutil.Lookahead cannot.

// ensureCache scans additional tokens into the cache until at least n
// are buffered ahead of the current token.
func (l *Lexer) ensureCache(n int) {
	for len(l.cache) < n {
		l.cache = append(l.cache, l.scanToken())
	}
}

// PeekNext reports the Kind of the token Next would return without
// consuming it.
func (l *Lexer) PeekNext() token.Kind {
	l.ensureCache(1)
	return l.cache[0].Kind
}

// PeekNext2 reports the Kind of the token after the one PeekNext would
// return.
func (l *Lexer) PeekNext2() token.Kind {
	l.ensureCache(2)
	return l.cache[1].Kind
}

// Peek returns the token immediately following tk. Vesper's lexer only
// ever looks ahead from its own current position, so tk is expected to
// be the value most recently returned by Token; the lookahead cache is
// relative to the lexer's cursor, not to an arbitrary historical token.
func (l *Lexer) Peek(tk *token.Token) *token.Token {
	_ = tk
	l.ensureCache(1)
	return l.cache[0]
}

// PeekPastParen scans ahead from tk, which must be positioned on a
// token.KindLParen, tracking paren and brace depth, and returns the
// token immediately after the matching close paren (or token.KindEOF if
// the buffer ends first). Tokens it scans to get there remain cached for
// subsequent Next calls.
func (l *Lexer) PeekPastParen(tk *token.Token) *token.Token {
	_ = tk
	parenDepth := 1
	braceDepth := 0
	for i := 0; ; i++ {
		l.ensureCache(i + 1)
		t := l.cache[i]
		switch t.Kind {
		case token.KindLParen:
			parenDepth++
		case token.KindRParen:
			parenDepth--
			if parenDepth == 0 {
				l.ensureCache(i + 2)
				return l.cache[i+1]
			}
		case token.KindLBrace:
			braceDepth++
		case token.KindRBrace:
			if braceDepth > 0 {
				braceDepth--
			}
		case token.KindEOF:
			return t
		}
	}
}
