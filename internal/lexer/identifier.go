// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vesper-lang/vesperc/internal/charclass"
	"github.com/vesper-lang/vesperc/internal/diag"
	"github.com/vesper-lang/vesperc/internal/token"
)

// scanIdentifier scans forward from the already-consumed first byte
// (whose offset is startOffset) while the current byte is an identifier
// continuation byte or a non-ASCII sequence decoding to a Unicode
// letter, then resolves the spelling through the intern pool.
func (l *Lexer) scanIdentifier(loc token.Location, startOffset int) *token.Token {
	for {
		if l.cur() < 0x80 {
			if !charclass.IsIdentCont(rune(l.cur())) {
				break
			}
			l.advance()
			continue
		}
		r, size := l.decodeRuneAt(l.p)
		if size == 0 {
			l.fail(diag.CodeInvalidUTF8, "invalid UTF-8 sequence in identifier")
			l.advance()
			continue
		}
		if !charclass.IsIdentStart(r) {
			break
		}
		l.p += size
	}

	spelling := string(l.src[startOffset:l.p])

	if strings.HasPrefix(spelling, "__") && strings.HasSuffix(spelling, "__") {
		if tok := l.specialIdentifier(loc, spelling); tok != nil {
			return tok
		}
	}

	if kind, ok := l.pool.Keyword(spelling); ok {
		return &token.Token{Kind: kind, Loc: loc, Ident: l.pool.Intern(spelling)}
	}
	return &token.Token{Kind: token.KindIdentifier, Loc: loc, Ident: l.pool.Intern(spelling), StringValue: spelling}
}

var (
	specialOnce      sync.Once
	specialDate      string
	specialTime      string
	specialTimestamp string
)

// initSpecials lazily computes __DATE__/__TIME__/__TIMESTAMP__ once per
// process, under a sync.Once: two lexers in the same process see
// identical values, taken from the wall clock at the first use of any of
// the three rather than at each use.
func initSpecials() {
	specialOnce.Do(func() {
		now := time.Now()
		specialDate = now.Format("Jan _2 2006")
		specialTime = now.Format("15:04:05")
		specialTimestamp = now.Format("Mon Jan _2 15:04:05 2006")
	})
}

// specialIdentifier resolves one of the six __NAME__ substitutions. It
// returns nil when spelling isn't one of the recognized special forms,
// so the caller falls through to ordinary identifier/keyword resolution.
func (l *Lexer) specialIdentifier(loc token.Location, spelling string) *token.Token {
	switch spelling {
	case "__DATE__":
		initSpecials()
		return &token.Token{Kind: token.KindString, Loc: loc, StringValue: specialDate}
	case "__TIME__":
		initSpecials()
		return &token.Token{Kind: token.KindString, Loc: loc, StringValue: specialTime}
	case "__TIMESTAMP__":
		initSpecials()
		return &token.Token{Kind: token.KindString, Loc: loc, StringValue: specialTimestamp}
	case "__VENDOR__":
		return &token.Token{Kind: token.KindString, Loc: loc, StringValue: l.vendor.Vendor()}
	case "__VERSION__":
		return &token.Token{Kind: token.KindIntegerI32, Loc: loc, IntValue: uint64(parseVersion(l.vendor.Version()))}
	case "__EOF__":
		l.p = len(l.src) - 1
		return &token.Token{Kind: token.KindEOF, Loc: loc}
	}
	return nil
}

// parseVersion turns "N.M..." into 1000*major+minor.
func parseVersion(v string) int64 {
	parts := strings.SplitN(v, ".", 3)
	major, _ := strconv.Atoi(parts[0])
	minor := 0
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}
	return int64(1000*major + minor)
}
