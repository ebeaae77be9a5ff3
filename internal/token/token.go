// SPDX-License-Identifier: Apache-2.0

// Package token defines the token vocabulary the lexer produces: the Kind
// enumeration, the Location a token was scanned at, and the Token value
// record itself, sized for the punctuation/operator/literal/keyword set a
// C-family systems language needs.
package token

import "github.com/vesper-lang/vesperc/internal/optional"

// Identity is the canonical identity an intern pool assigns to a byte range
// it has seen before. Two identifiers with the same spelling always get the
// same Identity from the same pool.
type Identity uint32

// Location pins a token to a place in a source file. Column is computed as
// 1 + (p - line), so it is always >= 1 for any scanned token.
type Location struct {
	Filename string
	Line     int32
	Column   int32
}

// Postfix is the trailing character-width hint on a string literal.
type Postfix byte

const (
	PostfixNone Postfix = 0
	PostfixChar Postfix = 'c'
	PostfixWide Postfix = 'w'
	PostfixDchr Postfix = 'd'
)

// Token is a value record, not an object: callers copy it freely, and the
// lexer never hands out a pointer into its own internals. Exactly one of
// the payload fields below is meaningful for any given Kind; which one is
// determined entirely by Kind.
type Token struct {
	Kind Kind
	Loc  Location

	// IntValue holds the payload for every integer Kind (KindIntegerI32,
	// KindIntegerU32, KindIntegerI64, KindIntegerU64).
	IntValue uint64
	// FloatValue holds the payload for every float Kind.
	FloatValue float64
	// Ident holds the intern-pool identity for KindIdentifier and every
	// keyword Kind.
	Ident Identity
	// StringValue holds the payload for every string-valued Kind
	// (KindString, KindHexString, KindComment, and the four
	// __DATE__-family special identifiers).
	StringValue string
	// Postfix is set on string Kinds that carried a trailing c/w/d hint.
	Postfix Postfix

	// BlockComment and LineComment carry a canonicalized doc comment body
	// attached to this token by the comment scanner. Both are present when
	// a doc comment trailing a token on one line and another on a later
	// line both precede this token (see comment.go). optional.Optional avoids
	// using "" to mean "no doc comment attached", since an explicitly empty
	// doc comment body is a distinct, if odd, case.
	BlockComment optional.Optional[string]
	LineComment  optional.Optional[string]
}
