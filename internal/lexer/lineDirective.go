// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"github.com/vesper-lang/vesperc/internal/charclass"
	"github.com/vesper-lang/vesperc/internal/diag"
	"github.com/vesper-lang/vesperc/internal/token"
)

// scanLineDirective parses the body of a #line directive: an integer
// (or __LINE__) new line number, then optionally a quoted filespec (or
// __FILE__), terminated by end of line or EOF. On success the line
// counter and filename are rewritten so the following line reports the
// new number; on failure a diagnostic is raised at the directive's own
// location and the rest of the malformed line is skipped.
func (l *Lexer) scanLineDirective(loc token.Location) *token.Token {
	failAtDirective := func(message string) {
		e := diag.New(diag.Location{URI: loc.Filename, Line: loc.Line, Column: loc.Column}, diag.CodeInvalidLineDirective, message)
		if l.reporter.Report(e) != nil {
			l.errors = true
		}
	}

	l.skipHorizontalSpace()

	var newLine int64
	switch {
	case l.matchesWord("__LINE__"):
		l.p += len("__LINE__")
		newLine = int64(l.line)
	case charclass.IsDigit(l.cur()):
		start := l.p
		for charclass.IsDigit(l.cur()) {
			l.advance()
		}
		newLine, _ = parseUintBaseInt64(string(l.src[start:l.p]))
	default:
		failAtDirective("#line directive expects a line number")
		return l.recoverLineDirective()
	}

	l.skipHorizontalSpace()

	newFile := l.filename
	switch {
	case l.cur() == '"':
		l.advance()
		start := l.p
		for l.cur() != '"' && l.cur() != '\n' && l.cur() != '\r' && !l.atEOF() {
			l.advance()
		}
		newFile = string(l.src[start:l.p])
		if l.cur() == '"' {
			l.advance()
		} else {
			failAtDirective("#line directive filespec is missing its closing quote")
		}
	case l.matchesWord("__FILE__"):
		l.p += len("__FILE__")
	}

	l.skipHorizontalSpace()
	if !l.atEOF() && l.cur() != '\n' && l.cur() != '\r' {
		failAtDirective("#line directive must be terminated by end of line")
		return l.recoverLineDirective()
	}

	l.skipLineBreak()
	l.line = int32(newLine)
	l.filename = newFile
	return l.scanToken()
}

// recoverLineDirective skips the remainder of a malformed #line
// directive's line and resumes ordinary scanning.
func (l *Lexer) recoverLineDirective() *token.Token {
	for l.cur() != '\n' && l.cur() != '\r' && !l.atEOF() {
		l.advance()
	}
	l.skipLineBreak()
	return l.scanToken()
}

func (l *Lexer) skipHorizontalSpace() {
	for l.cur() == ' ' || l.cur() == '\t' {
		l.advance()
	}
}

func parseUintBaseInt64(s string) (int64, bool) {
	v, overflow := parseUintBase(s, 10)
	return int64(v), overflow
}
