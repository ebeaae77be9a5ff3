// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"math"
	"strings"

	"github.com/vesper-lang/vesperc/internal/charclass"
	"github.com/vesper-lang/vesperc/internal/diag"
	"github.com/vesper-lang/vesperc/internal/token"
)

// numSuffix accumulates the suffix letters trailing a numeric literal.
type numSuffix struct {
	unsigned  bool
	long      bool
	float32   bool
	float80   bool
	imaginary bool
}

// scanNumber dispatches a numeric literal starting at the cursor. Base is
// detected from the 0x/0X/0b/0B/leading-octal prefix; digits (with '_'
// separators stripped) are accumulated, and the literal is reclassified as
// a float the moment a fractional point or exponent marker appears.
func (l *Lexer) scanNumber(loc token.Location) *token.Token {
	base := 10
	switch {
	case l.cur() == '0' && (l.peekByte() == 'x' || l.peekByte() == 'X'):
		base = 16
		l.advance()
		l.advance()
	case l.cur() == '0' && (l.peekByte() == 'b' || l.peekByte() == 'B'):
		base = 2
		l.advance()
		l.advance()
	case l.cur() == '0' && (charclass.IsOctalDigit(l.peekByte()) || l.peekByte() == '_'):
		base = 8
		l.advance()
	}

	digitsStart := l.p
	l.consumeDigitsOfBase(base)

	// A decimal digit trailing a non-decimal literal is diagnosed but still
	// accumulated into the digit run and the value rather than ending the
	// literal early.
	for base != 10 && charclass.IsDigit(l.cur()) {
		l.fail(diag.CodeBadRadixDigit, "digit %q not valid in base %d integer literal", l.cur(), base)
		l.advance()
	}

	isFloat := false
	nextRune, _ := l.decodeRuneAt(l.p + 1)
	if base == 10 && l.cur() == '.' && l.peekByte() != '.' && !charclass.IsIdentStart(nextRune) {
		isFloat = true
		l.advance()
		l.consumeDigitsOfBase(10)
	} else if base == 16 && l.cur() == '.' {
		isFloat = true
		l.advance()
		l.consumeDigitsOfBase(16)
	}

	if base == 10 && (l.cur() == 'e' || l.cur() == 'E') {
		isFloat = true
		l.scanExponent()
	} else if base == 16 && (l.cur() == 'p' || l.cur() == 'P') {
		isFloat = true
		l.scanExponent()
	} else if base == 16 && isFloat {
		l.fail(diag.CodeInvalidNumber, "hex float literal missing mandatory binary exponent")
	}

	if isFloat {
		return l.finishFloat(loc, digitsStart, base)
	}
	return l.finishInteger(loc, digitsStart, base)
}

func (l *Lexer) consumeDigitsOfBase(base int) {
	for {
		c := l.cur()
		if c == '_' {
			l.advance()
			continue
		}
		switch base {
		case 16:
			if !charclass.IsHexDigit(c) {
				return
			}
		case 8:
			if !charclass.IsOctalDigit(c) {
				return
			}
		case 2:
			if !charclass.IsBinaryDigit(c) {
				return
			}
		default:
			if !charclass.IsDigit(c) {
				return
			}
		}
		l.advance()
	}
}

func (l *Lexer) scanExponent() {
	l.advance() // e/E/p/P
	if l.cur() == '+' || l.cur() == '-' {
		l.advance()
	}
	l.consumeDigitsOfBase(10)
}

func (l *Lexer) finishInteger(loc token.Location, digitsStart, base int) *token.Token {
	text := stripUnderscores(string(l.src[digitsStart:l.p]))
	suffix := l.scanNumericSuffix()

	if base == 8 && len(text) > 0 {
		if v, _ := parseUintBase(text, 8); v >= 8 {
			l.deprecate(diag.CodeDeprecatedOctal, "octal integer literal with leading zero is deprecated")
		}
	}

	value, overflow := parseUintBase(text, base)
	if (overflow || value > math.MaxInt64) && base == 10 && !suffix.unsigned {
		l.fail(diag.CodeIntegerOverflow, "integer literal %s overflows signed range", text)
	}

	kind := integerKind(value, base, suffix)
	return &token.Token{Kind: kind, Loc: loc, IntValue: value}
}

// integerKind picks the smallest representable kind for value that also
// satisfies any explicit u/l suffix.
func integerKind(value uint64, base int, s numSuffix) token.Kind {
	fitsI32 := value <= math.MaxInt32
	fitsU32 := value <= math.MaxUint32
	fitsI64 := value <= math.MaxInt64

	switch {
	case s.unsigned && s.long:
		return token.KindIntegerU64
	case s.long:
		if fitsI64 {
			return token.KindIntegerI64
		}
		return token.KindIntegerU64
	case s.unsigned:
		if fitsU32 {
			return token.KindIntegerU32
		}
		return token.KindIntegerU64
	case base != 10:
		switch {
		case fitsI32:
			return token.KindIntegerI32
		case fitsU32:
			return token.KindIntegerU32
		case fitsI64:
			return token.KindIntegerI64
		default:
			return token.KindIntegerU64
		}
	default:
		switch {
		case fitsI32:
			return token.KindIntegerI32
		case fitsI64:
			return token.KindIntegerI64
		default:
			return token.KindIntegerU64
		}
	}
}

func (l *Lexer) scanNumericSuffix() numSuffix {
	var s numSuffix
	for {
		switch l.cur() {
		case 'u', 'U':
			if l.cur() == 'u' {
				l.deprecate(diag.CodeDeprecatedSuffixCase, "lowercase 'u' integer suffix is deprecated, use 'U'")
			}
			s.unsigned = true
			l.advance()
		case 'L':
			s.long = true
			l.advance()
		case 'l':
			l.deprecate(diag.CodeDeprecatedSuffixCase, "lowercase 'l' integer suffix is deprecated, use 'L'")
			s.long = true
			l.advance()
		default:
			return s
		}
	}
}

func (l *Lexer) finishFloat(loc token.Location, digitsStart, base int) *token.Token {
	text := stripUnderscores(string(l.src[digitsStart:l.p]))
	if base == 16 {
		text = "0x" + text
	}

	kind := token.KindFloat64
	bitSize := 64
	switch l.cur() {
	case 'f', 'F':
		l.advance()
		kind = token.KindFloat32
		bitSize = 32
	case 'L':
		l.advance()
		kind = token.KindFloat80
		bitSize = 80
	}
	if l.cur() == 'i' || l.cur() == 'I' {
		l.advance()
		switch kind {
		case token.KindFloat32:
			kind = token.KindImaginary32
		case token.KindFloat80:
			kind = token.KindImaginary80
		default:
			kind = token.KindImaginary64
		}
	}

	value, err := l.floats.ParseFloat(text, bitSize)
	if err != nil && kind != token.KindFloat80 && kind != token.KindImaginary80 {
		l.fail(diag.CodeInvalidNumber, "float literal %s is out of range: %v", text, err)
	}
	return &token.Token{Kind: kind, Loc: loc, FloatValue: value}
}

func stripUnderscores(s string) string {
	if strings.IndexByte(s, '_') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// parseUintBase accumulates text as an unsigned integer in the given
// base, reporting overflow rather than wrapping. Below the threshold
// noted in the design notes this would be a plain multiply-add; Go's
// overflow-checked comparison each iteration is the idiomatic
// equivalent without a hand-split fast/slow path.
func parseUintBase(text string, base int) (uint64, bool) {
	var value uint64
	overflow := false
	for i := 0; i < len(text); i++ {
		d := digitValue(text[i])
		if d < 0 {
			continue
		}
		if value > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
		}
		value = value*uint64(base) + uint64(d)
	}
	return value, overflow
}

func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}
