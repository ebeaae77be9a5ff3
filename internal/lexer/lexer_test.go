// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesperc/internal/source"
	"github.com/vesper-lang/vesperc/internal/token"
)

func lexAll(t *testing.T, src string, opts ...Option) []*token.Token {
	t.Helper()
	buf := append([]byte(src), source.Sentinel)
	lx, err := New("/test", buf, opts...)
	require.NoError(t, err)

	var toks []*token.Token
	for {
		kind := lx.Next()
		toks = append(toks, lx.Token())
		if kind == token.KindEOF {
			break
		}
	}
	return toks
}

func kinds(toks []*token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexerPunctuation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected []token.Kind
	}{
		{"", []token.Kind{token.KindEOF}},
		{".", []token.Kind{token.KindDot, token.KindEOF}},
		{"..", []token.Kind{token.KindDotDot, token.KindEOF}},
		{"...", []token.Kind{token.KindDotDotDot, token.KindEOF}},
		{"&", []token.Kind{token.KindAmp, token.KindEOF}},
		{"&=", []token.Kind{token.KindAmpEqual, token.KindEOF}},
		{"&&", []token.Kind{token.KindAmpAmp, token.KindEOF}},
		{"<<=", []token.Kind{token.KindLessLessEqual, token.KindEOF}},
		{">>>=", []token.Kind{token.KindGreaterGreaterGreaterEqual, token.KindEOF}},
		{"!<>=", []token.Kind{token.KindBangLessGreaterEqual, token.KindEOF}},
		{"=>", []token.Kind{token.KindEqualGreater, token.KindEOF}},
		{"^^=", []token.Kind{token.KindCaretCaretEqual, token.KindEOF}},
		{"{}[]()?,;:$@", []token.Kind{
			token.KindLBrace, token.KindRBrace, token.KindLBracket, token.KindRBracket,
			token.KindLParen, token.KindRParen, token.KindQuestion, token.KindComma,
			token.KindSemicolon, token.KindColon, token.KindDollar, token.KindAt, token.KindEOF,
		}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, kinds(lexAll(t, tc.input)))
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		kind  token.Kind
		int   uint64
	}{
		{"decimal", "1234", token.KindIntegerI32, 1234},
		{"underscored", "1_234_567", token.KindIntegerI32, 1234567},
		{"hex", "0xFF", token.KindIntegerI32, 0xFF},
		{"octal", "010", token.KindIntegerI32, 8},
		{"binary", "0b1010", token.KindIntegerI32, 10},
		{"unsigned", "10U", token.KindIntegerU32, 10},
		{"long", "10L", token.KindIntegerI64, 10},
		{"unsigned long", "10UL", token.KindIntegerU64, 10},
		{"overflows u32 without suffix", "5000000000", token.KindIntegerI64, 5000000000},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks := lexAll(t, tc.input)
			require.Len(t, toks, 2)
			require.Equal(t, tc.kind, toks[0].Kind)
			require.Equal(t, tc.int, toks[0].IntValue)
		})
	}
}

func TestLexerFloats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		kind  token.Kind
		value float64
	}{
		{"plain", "1.5", token.KindFloat64, 1.5},
		{"exponent", "1e10", token.KindFloat64, 1e10},
		{"float32 suffix", "1.5f", token.KindFloat32, 1.5},
		{"imaginary", "1.5i", token.KindImaginary64, 1.5},
		{"hex float", "0x1.8p3", token.KindFloat64, 12},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks := lexAll(t, tc.input)
			require.Len(t, toks, 2)
			require.Equal(t, tc.kind, toks[0].Kind)
			require.InDelta(t, tc.value, toks[0].FloatValue, 0.0001)
		})
	}
}

func TestLexerStrings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		kind  token.Kind
		value string
	}{
		{"escaped", `"hello\nworld"`, token.KindString, "hello\nworld"},
		{"wysiwyg quote", `r"a\b"`, token.KindString, `a\b`},
		{"wysiwyg backtick", "`a\\b`", token.KindString, `a\b`},
		{"hex string", `x"68656c6c6f"`, token.KindHexString, "hello"},
		{"delimited bracketed", `q"(hi)"`, token.KindString, "hi"},
		{"delimited single char", `q"|hi|"`, token.KindString, "hi"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks := lexAll(t, tc.input)
			require.Len(t, toks, 2)
			require.Equal(t, tc.kind, toks[0].Kind)
			require.Equal(t, tc.value, toks[0].StringValue)
		})
	}
}

func TestLexerTokenString(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, `q{1 + 2}`)
	require.Len(t, toks, 2)
	require.Equal(t, token.KindString, toks[0].Kind)
	require.Equal(t, "1 + 2", toks[0].StringValue)
}

func TestLexerChars(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		kind  token.Kind
		value rune
	}{
		{"plain", "'a'", token.KindCharV, 'a'},
		{"escape", `'\n'`, token.KindCharV, '\n'},
		{"unicode bmp", "'é'", token.KindWCharV, 'é'},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks := lexAll(t, tc.input)
			require.Len(t, toks, 2)
			require.Equal(t, tc.kind, toks[0].Kind)
			require.Equal(t, uint64(tc.value), toks[0].IntValue)
		})
	}
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "foo if struct")
	require.Len(t, toks, 4)
	require.Equal(t, token.KindIdentifier, toks[0].Kind)
	require.Equal(t, token.KindIf, toks[1].Kind)
	require.Equal(t, token.KindStruct, toks[2].Kind)
	require.True(t, toks[2].Kind.IsKeyword())
}

func TestLexerComments(t *testing.T) {
	t.Parallel()

	t.Run("skipped by default", func(t *testing.T) {
		t.Parallel()
		toks := lexAll(t, "// hello\n1")
		require.Equal(t, []token.Kind{token.KindIntegerI32, token.KindEOF}, kinds(toks))
	})

	t.Run("emitted as tokens when requested", func(t *testing.T) {
		t.Parallel()
		toks := lexAll(t, "// hello\n1", WithCommentTokens())
		require.Equal(t, []token.Kind{token.KindComment, token.KindIntegerI32, token.KindEOF}, kinds(toks))
	})

	t.Run("doc comment attaches to following token", func(t *testing.T) {
		t.Parallel()
		toks := lexAll(t, "/** hello */\nfoo", WithDocComments())
		require.Len(t, toks, 2)
		require.True(t, toks[0].BlockComment.IsPresent())
		require.Equal(t, "hello\n", toks[0].BlockComment.Value())
	})

	t.Run("nesting block comment", func(t *testing.T) {
		t.Parallel()
		toks := lexAll(t, "/+ outer /+ inner +/ outer +/1")
		require.Equal(t, []token.Kind{token.KindIntegerI32, token.KindEOF}, kinds(toks))
	})
}

func TestLexerSpecialIdentifiers(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "__VENDOR__")
	require.Len(t, toks, 2)
	require.Equal(t, token.KindString, toks[0].Kind)

	toks = lexAll(t, "__VERSION__")
	require.Len(t, toks, 2)
	require.Equal(t, token.KindIntegerI32, toks[0].Kind)
}

func TestLexerLineDirective(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "#line 100 \"other.vsp\"\nfoo")
	require.Len(t, toks, 2)
	require.Equal(t, token.KindIdentifier, toks[0].Kind)
	require.Equal(t, int32(100), toks[0].Loc.Line)
	require.Equal(t, "other.vsp", toks[0].Loc.Filename)
}

func TestLexerRejectsUnterminatedBuffer(t *testing.T) {
	t.Parallel()
	_, err := New("/test", []byte("no sentinel"))
	require.Error(t, err)
}

func TestLexerKindStreamMatchesExactly(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "function add(a i32, b i32) i32 { return a + b; }")
	expected := []token.Kind{
		token.KindFunction, token.KindIdentifier, token.KindLParen,
		token.KindIdentifier, token.KindIdentifier, token.KindComma,
		token.KindIdentifier, token.KindIdentifier, token.KindRParen,
		token.KindIdentifier, token.KindLBrace,
		token.KindReturn, token.KindIdentifier, token.KindPlus, token.KindIdentifier, token.KindSemicolon,
		token.KindRBrace, token.KindEOF,
	}
	if diff := cmp.Diff(expected, kinds(toks)); diff != "" {
		t.Fatalf("unexpected token kinds (-want +got):\n%s", diff)
	}
}
