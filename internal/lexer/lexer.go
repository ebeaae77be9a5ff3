// SPDX-License-Identifier: Apache-2.0

// Package lexer implements Vesper's tokenizer: a single stateful Lexer
// owning a read cursor into an externally supplied, sentinel-terminated
// byte buffer. It is pull-based: the caller drives scanning by calling
// Next, and the lexer advances its cursor and returns a populated token on
// each call.
//
// The buffer is fixed and fully resident (see internal/source.Buffer), so
// the lexer indexes directly into a []byte and treats the trailing
// sentinel byte as its own end-of-input signal rather than pulling from a
// streaming reader.
package lexer

import (
	"fmt"
	"strings"

	"github.com/vesper-lang/vesperc/internal/config"
	"github.com/vesper-lang/vesperc/internal/diag"
	"github.com/vesper-lang/vesperc/internal/entity"
	"github.com/vesper-lang/vesperc/internal/intern"
	"github.com/vesper-lang/vesperc/internal/numeric"
	"github.com/vesper-lang/vesperc/internal/optional"
	"github.com/vesper-lang/vesperc/internal/source"
	"github.com/vesper-lang/vesperc/internal/token"
	"github.com/vesper-lang/vesperc/internal/vendorinfo"
)

// InternPool is the identifier-canonicalization collaborator: it turns a
// scanned identifier spelling into a stable Identity, and resolves
// keyword spellings to their own Kind.
type InternPool = intern.Pool

// EntityTable resolves the named character references \&name; escapes
// use.
type EntityTable = entity.Table

// FloatParser turns a decimal or hex-float ASCII literal into a float64.
type FloatParser = numeric.Parser

// VendorInfo supplies the strings __VENDOR__ and __VERSION__ substitute.
type VendorInfo interface {
	Vendor() string
	Version() string
}

// Option configures a Lexer at construction time, the same functional
// options idiom internal/config.New uses.
type Option func(*Lexer)

func WithInternPool(p InternPool) Option {
	return func(l *Lexer) { l.pool = p }
}

func WithReporter(r diag.Reporter) Option {
	return func(l *Lexer) { l.reporter = r }
}

func WithEntityTable(t EntityTable) Option {
	return func(l *Lexer) { l.entities = t }
}

func WithFloatParser(p FloatParser) Option {
	return func(l *Lexer) { l.floats = p }
}

func WithVendorInfo(v VendorInfo) Option {
	return func(l *Lexer) { l.vendor = v }
}

// WithDocComments enables harvesting of /** /++ /// doc comments onto the
// next non-comment token. Disabled by default.
func WithDocComments() Option {
	return func(l *Lexer) { l.doDocComment = true }
}

// WithCommentTokens makes every comment its own token.KindComment token
// instead of being skipped (and, if enabled, harvested as a doc
// comment). Disabled by default.
func WithCommentTokens() Option {
	return func(l *Lexer) { l.commentToken = true }
}

// WithDeprecationsAsErrors makes deprecation diagnostics fatal, the same
// flag internal/config.WithDeprecationsAsErrors threads through to the
// default Reporter built here.
func WithDeprecationsAsErrors() Option {
	return func(l *Lexer) { l.deprecationsAsErrors = true }
}

// Lexer scans one immutable, sentinel-terminated source buffer into a
// stream of tokens. It is not safe for concurrent use from multiple
// goroutines; run one Lexer per file, the way internal/driver does.
type Lexer struct {
	filename string
	src      []byte

	p         int
	lineStart int
	line      int32

	prevloc token.Location
	tok     *token.Token

	cache []*token.Token

	pool     InternPool
	reporter diag.Reporter
	entities EntityTable
	floats   FloatParser
	vendor   VendorInfo

	deprecationsAsErrors bool
	doDocComment         bool
	commentToken         bool

	scratch strings.Builder

	errors bool

	pendingBlock optional.Optional[string]
	pendingLine  optional.Optional[string]
	sawTokenLine bool
}

// New constructs a Lexer over src, which must already end with
// internal/source.Sentinel (or a plain NUL byte). filename is reported in
// every token.Location and diag.Exception this lexer produces.
func New(filename string, src []byte, opts ...Option) (*Lexer, error) {
	if len(src) == 0 || (src[len(src)-1] != source.Sentinel && src[len(src)-1] != 0) {
		return nil, fmt.Errorf("lexer: %s: source buffer must end with a sentinel byte", filename)
	}

	l := &Lexer{
		filename:  filename,
		src:       src,
		p:         0,
		lineStart: 0,
		line:      1,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.pool == nil {
		l.pool = intern.New()
	}
	if l.entities == nil {
		l.entities = entity.Default
	}
	if l.floats == nil {
		l.floats = numeric.Default
	}
	if l.vendor == nil {
		l.vendor = vendorinfo.New(config.New())
	}
	if l.reporter == nil {
		l.reporter = diag.NewReporter(l.deprecationsAsErrors)
	}
	l.tok = &token.Token{Kind: token.KindUnknown}

	l.consumeShebang()

	return l, nil
}

// consumeShebang silently skips a leading "#!" to end of line, per the
// input contract's shebang allowance.
func (l *Lexer) consumeShebang() {
	if l.cur() == '#' && l.peekByte() == '!' {
		for !l.atEOFByte(l.cur()) && l.cur() != '\n' && l.cur() != '\r' {
			l.advance()
		}
	}
}

// Next advances the lexer by one token: it drains the lookahead cache if
// populated, otherwise scans a fresh token. The previous current token's
// location becomes available via PrevLoc.
func (l *Lexer) Next() token.Kind {
	l.prevloc = l.tok.Loc
	if len(l.cache) > 0 {
		l.tok = l.cache[0]
		l.cache = l.cache[1:]
		return l.tok.Kind
	}
	l.tok = l.scanToken()
	return l.tok.Kind
}

// Token returns the current token, populated by the most recent Next.
func (l *Lexer) Token() *token.Token {
	return l.tok
}

// PrevLoc returns the location of the token returned by the previous
// Next call.
func (l *Lexer) PrevLoc() token.Location {
	return l.prevloc
}

// Errors reports whether any fatal diagnostic has been raised so far.
func (l *Lexer) Errors() bool {
	return l.errors
}

func (l *Lexer) fail(code string, format string, args ...any) {
	e := diag.New(diag.Location{URI: l.filename, Line: l.line, Column: l.column()}, code, fmt.Sprintf(format, args...))
	if r := l.reporter.Report(e); r != nil {
		l.errors = true
	}
}

func (l *Lexer) deprecate(code string, format string, args ...any) {
	e := diag.NewDeprecation(diag.Location{URI: l.filename, Line: l.line, Column: l.column()}, code, fmt.Sprintf(format, args...))
	if r := l.reporter.Report(e); r != nil {
		l.errors = true
	}
}
