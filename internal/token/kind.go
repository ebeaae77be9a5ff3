// SPDX-License-Identifier: Apache-2.0

package token

// Kind enumerates every distinct token the lexer can produce: punctuation,
// operators, literal forms, the identifier kind, and every reserved keyword.
type Kind uint16

const (
	KindUnknown Kind = iota
	KindEOF

	// Identifier and literal kinds. The
	// __DATE__/__TIME__/__TIMESTAMP__/__VENDOR__/__VERSION__/__EOF__
	// special identifiers never reach a caller as KindIdentifier: the
	// lexer substitutes them first (KindString, KindIntegerI32 for
	// __VERSION__, KindEOF for __EOF__).
	KindIdentifier
	KindIntegerI32
	KindIntegerU32
	KindIntegerI64
	KindIntegerU64
	KindFloat32
	KindFloat64
	KindFloat80
	KindImaginary32
	KindImaginary64
	KindImaginary80
	KindString
	KindHexString
	KindCharV
	KindWCharV
	KindDCharV
	KindComment

	// Punctuation and operators.
	KindDot
	KindDotDot
	KindDotDotDot

	KindAmp
	KindAmpEqual
	KindAmpAmp

	KindPipe
	KindPipeEqual
	KindPipePipe

	KindMinus
	KindMinusEqual
	KindMinusMinus

	KindPlus
	KindPlusEqual
	KindPlusPlus

	KindLess
	KindLessEqual
	KindLessLess
	KindLessLessEqual
	KindLessGreater
	KindLessGreaterEqual

	KindGreater
	KindGreaterEqual
	KindGreaterGreater
	KindGreaterGreaterEqual
	KindGreaterGreaterGreater
	KindGreaterGreaterGreaterEqual

	KindBang
	KindBangEqual
	KindBangLess
	KindBangLessEqual
	KindBangLessGreater
	KindBangLessGreaterEqual
	KindBangGreater
	KindBangGreaterEqual

	KindEqual
	KindEqualEqual
	KindEqualGreater

	KindTilde
	KindTildeEqual

	KindCaret
	KindCaretEqual
	KindCaretCaret
	KindCaretCaretEqual

	KindStar
	KindStarEqual

	KindSlash
	KindSlashEqual

	KindPercent
	KindPercentEqual

	KindLParen
	KindRParen
	KindLBracket
	KindRBracket
	KindLBrace
	KindRBrace
	KindQuestion
	KindComma
	KindSemicolon
	KindColon
	KindDollar
	KindAt
	KindPound

	// Keywords. Each resolves through the intern pool's keyword table
	// rather than being recognized by the scanner directly; see
	// internal/intern.
	KindKeywordBegin
	KindInt
	KindUint
	KindLong
	KindUlong
	KindFloatT
	KindDouble
	KindReal
	KindIfloat
	KindIdouble
	KindIreal
	KindCfloat
	KindCdouble
	KindCreal
	KindChar
	KindWchar
	KindDchar
	KindBool
	KindVoid
	KindByte
	KindUbyte
	KindShort
	KindUshort

	KindConst
	KindImmutable
	KindShared
	KindStatic
	KindExtern
	KindFinal
	KindAbstract
	KindOverride
	KindPure
	KindNothrow
	KindAuto
	KindScope

	KindStruct
	KindClass
	KindInterface
	KindUnion
	KindEnum
	KindTemplate
	KindModule
	KindImport
	KindAlias
	KindFunction
	KindDelegate
	KindThis
	KindSuper
	KindNull
	KindTrue
	KindFalse
	KindCast
	KindTypeof
	KindTypeid
	KindIs
	KindIn
	KindOut
	KindRef
	KindLazy
	KindNew
	KindDelete

	KindIf
	KindElse
	KindWhile
	KindDo
	KindFor
	KindForeach
	KindSwitch
	KindCase
	KindDefault
	KindBreak
	KindContinue
	KindReturn
	KindGoto
	KindTry
	KindCatch
	KindFinally
	KindThrow
	KindWith
	KindAsm
	KindPragma
	KindDebug
	KindVersion
	KindUnittest
	KindInvariant
	KindDeprecated
	KindPackage
	KindExport
	KindPrivate
	KindProtected
	KindPublic
	KindAlign
	KindMixin
	KindKeywordEnd
)

var kindNames = map[Kind]string{
	KindUnknown: "Unknown", KindEOF: "EOF",
	KindIdentifier: "Identifier",
	KindIntegerI32: "IntegerI32", KindIntegerU32: "IntegerU32",
	KindIntegerI64: "IntegerI64", KindIntegerU64: "IntegerU64",
	KindFloat32: "Float32", KindFloat64: "Float64", KindFloat80: "Float80",
	KindImaginary32: "Imaginary32", KindImaginary64: "Imaginary64", KindImaginary80: "Imaginary80",
	KindString: "String", KindHexString: "HexString",
	KindCharV: "CharV", KindWCharV: "WCharV", KindDCharV: "DCharV",
	KindComment: "Comment",
	KindDot:     ".", KindDotDot: "..", KindDotDotDot: "...",
	KindAmp: "&", KindAmpEqual: "&=", KindAmpAmp: "&&",
	KindPipe: "|", KindPipeEqual: "|=", KindPipePipe: "||",
	KindMinus: "-", KindMinusEqual: "-=", KindMinusMinus: "--",
	KindPlus: "+", KindPlusEqual: "+=", KindPlusPlus: "++",
	KindLess: "<", KindLessEqual: "<=", KindLessLess: "<<", KindLessLessEqual: "<<=",
	KindLessGreater: "<>", KindLessGreaterEqual: "<>=",
	KindGreater: ">", KindGreaterEqual: ">=", KindGreaterGreater: ">>", KindGreaterGreaterEqual: ">>=",
	KindGreaterGreaterGreater: ">>>", KindGreaterGreaterGreaterEqual: ">>>=",
	KindBang: "!", KindBangEqual: "!=",
	KindBangLess: "!<", KindBangLessEqual: "!<=",
	KindBangLessGreater: "!<>", KindBangLessGreaterEqual: "!<>=",
	KindBangGreater: "!>", KindBangGreaterEqual: "!>=",
	KindEqual: "=", KindEqualEqual: "==", KindEqualGreater: "=>",
	KindTilde: "~", KindTildeEqual: "~=",
	KindCaret: "^", KindCaretEqual: "^=", KindCaretCaret: "^^", KindCaretCaretEqual: "^^=",
	KindStar: "*", KindStarEqual: "*=",
	KindSlash: "/", KindSlashEqual: "/=",
	KindPercent: "%", KindPercentEqual: "%=",
	KindLParen: "(", KindRParen: ")", KindLBracket: "[", KindRBracket: "]",
	KindLBrace: "{", KindRBrace: "}", KindQuestion: "?", KindComma: ",",
	KindSemicolon: ";", KindColon: ":", KindDollar: "$", KindAt: "@", KindPound: "#",
	KindInt: "int", KindUint: "uint", KindLong: "long", KindUlong: "ulong",
	KindFloatT: "float", KindDouble: "double", KindReal: "real",
	KindIfloat: "ifloat", KindIdouble: "idouble", KindIreal: "ireal",
	KindCfloat: "cfloat", KindCdouble: "cdouble", KindCreal: "creal",
	KindChar: "char", KindWchar: "wchar", KindDchar: "dchar", KindBool: "bool",
	KindVoid: "void", KindByte: "byte", KindUbyte: "ubyte", KindShort: "short", KindUshort: "ushort",
	KindConst: "const", KindImmutable: "immutable", KindShared: "shared", KindStatic: "static",
	KindExtern: "extern", KindFinal: "final", KindAbstract: "abstract", KindOverride: "override",
	KindPure: "pure", KindNothrow: "nothrow", KindAuto: "auto", KindScope: "scope",
	KindStruct: "struct", KindClass: "class", KindInterface: "interface", KindUnion: "union",
	KindEnum: "enum", KindTemplate: "template", KindModule: "module", KindImport: "import",
	KindAlias: "alias", KindFunction: "function", KindDelegate: "delegate",
	KindThis: "this", KindSuper: "super", KindNull: "null", KindTrue: "true", KindFalse: "false",
	KindCast: "cast", KindTypeof: "typeof", KindTypeid: "typeid",
	KindIs: "is", KindIn: "in", KindOut: "out", KindRef: "ref", KindLazy: "lazy",
	KindNew: "new", KindDelete: "delete",
	KindIf: "if", KindElse: "else", KindWhile: "while", KindDo: "do",
	KindFor: "for", KindForeach: "foreach", KindSwitch: "switch", KindCase: "case",
	KindDefault: "default", KindBreak: "break", KindContinue: "continue", KindReturn: "return",
	KindGoto: "goto", KindTry: "try", KindCatch: "catch", KindFinally: "finally",
	KindThrow: "throw", KindWith: "with", KindAsm: "asm", KindPragma: "pragma",
	KindDebug: "debug", KindVersion: "version", KindUnittest: "unittest", KindInvariant: "invariant",
	KindDeprecated: "deprecated", KindPackage: "package", KindExport: "export",
	KindPrivate: "private", KindProtected: "protected", KindPublic: "public",
	KindAlign: "align", KindMixin: "mixin",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

// IsKeyword reports whether k falls in the reserved-word range of the
// enumeration, the range the intern pool's keyword table resolves
// identifiers into.
func (k Kind) IsKeyword() bool {
	return k > KindKeywordBegin && k < KindKeywordEnd
}
