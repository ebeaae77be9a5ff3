// SPDX-License-Identifier: Apache-2.0

// Package driver wires internal/source, internal/lexer, internal/config, and
// internal/diag together into the multi-file entry point main.go calls:
// functional-options construction, a semaphore bounding concurrent work, and
// one aggregated error value covering every file that fails.
package driver

import (
	"context"
	"runtime"
	"strings"

	"github.com/vesper-lang/vesperc/internal/config"
	"github.com/vesper-lang/vesperc/internal/diag"
	"github.com/vesper-lang/vesperc/internal/intern"
	"github.com/vesper-lang/vesperc/internal/iterutil"
	"github.com/vesper-lang/vesperc/internal/lexer"
	"github.com/vesper-lang/vesperc/internal/source"
	"github.com/vesper-lang/vesperc/internal/token"
	"github.com/vesper-lang/vesperc/internal/vendorinfo"
)

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithFS overrides the file system targets are resolved against. The
// default is a local file system rooted at the process's working directory.
func WithFS(fs source.FileSystem) Option {
	return func(d *Driver) { d.fs = fs }
}

// WithConfig overrides the lexer configuration (vendor/version strings,
// whether deprecations are fatal) applied to every file lexed.
func WithConfig(cfg *config.Config) Option {
	return func(d *Driver) { d.cfg = cfg }
}

// WithInternPool shares one InternPool across every file a Driver lexes, so
// identifiers with the same spelling get the same Identity regardless of
// which file introduced them first.
func WithInternPool(pool lexer.InternPool) Option {
	return func(d *Driver) { d.pool = pool }
}

// WithMaxConcurrency bounds how many files LexAll lexes at once. The
// default is GOMAXPROCS capped at NumCPU.
func WithMaxConcurrency(n int) Option {
	return func(d *Driver) { d.maxConcurrency = n }
}

// WithDocComments enables doc-comment harvesting on every Lexer the driver
// constructs.
func WithDocComments() Option {
	return func(d *Driver) { d.docComments = true }
}

// WithCommentTokens makes every Lexer the driver constructs emit comments as
// their own tokens instead of skipping them.
func WithCommentTokens() Option {
	return func(d *Driver) { d.commentTokens = true }
}

// Driver lexes one or more source.Files, bounding concurrency and sharing a
// single intern pool and configuration across all of them.
type Driver struct {
	fs             source.FileSystem
	cfg            *config.Config
	pool           lexer.InternPool
	maxConcurrency int
	sem            *semaphore
	docComments    bool
	commentTokens  bool
}

// New builds a Driver, filling in defaults for anything opts didn't set.
func New(opts ...Option) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(d)
	}
	if d.cfg == nil {
		d.cfg = config.New()
	}
	if d.pool == nil {
		d.pool = intern.New()
	}
	if d.fs == nil {
		local, err := source.NewLocal(".")
		if err != nil {
			panic(err.Error())
		}
		d.fs = local
	}
	if d.maxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); max > cpus {
			max = cpus
		}
		d.maxConcurrency = max
	}
	d.sem = newSemaphore(d.maxConcurrency)
	return d
}

// Result is everything lexing one file produced: its complete token
// sequence and the diagnostics raised along the way.
type Result struct {
	Path       string
	Tokens     []*token.Token
	Exceptions []diag.Exception
	HasErrors  bool
}

// Iterator exposes Tokens through the driver's pull-based streaming
// vocabulary, so a parser can consume a lexed file without caring
// whether the driver lexed it eagerly or not.
func (r *Result) Iterator() iterutil.Iterator[*token.Token] {
	return iterutil.NewSlice(r.Tokens)
}

// LexFile resolves uri against the Driver's file system and lexes every
// file it names, draining each to completion.
func (d *Driver) LexFile(ctx context.Context, uri string) ([]*Result, error) {
	files, err := d.fs.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	results := make([]*Result, 0, len(files))
	for _, f := range files {
		r, err := d.lexOne(ctx, f)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// LexAll resolves and lexes every uri in uris concurrently, bounded by the
// Driver's configured concurrency limit. It returns every per-file Result
// obtained, plus a MultiError aggregating every fatal error raised across
// all files if any occurred.
func (d *Driver) LexAll(ctx context.Context, uris []string) ([]*Result, error) {
	var allFiles []source.File
	for _, uri := range uris {
		files, err := d.fs.Open(ctx, uri)
		if err != nil {
			return nil, err
		}
		allFiles = append(allFiles, files...)
	}

	type outcome struct {
		result *Result
		err    error
	}
	out := make(chan outcome)
	for _, f := range allFiles {
		go func(f source.File) {
			r, err := d.lexOne(ctx, f)
			out <- outcome{r, err}
		}(f)
	}

	results := make([]*Result, 0, len(allFiles))
	var fatal []error
	for range allFiles {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		case o := <-out:
			if o.err != nil {
				fatal = append(fatal, o.err)
				continue
			}
			results = append(results, o.result)
		}
	}
	if len(fatal) > 0 {
		return results, MultiError(fatal)
	}
	return results, nil
}

func (d *Driver) lexOne(ctx context.Context, f source.File) (*Result, error) {
	if err := d.sem.Acquire(ctx); err != nil {
		return nil, err
	}
	defer d.sem.Release()

	path := f.Path(ctx)
	buf, err := source.Buffer(ctx, f)
	if err != nil {
		return nil, err
	}

	reporter := diag.NewReporter(d.cfg.DeprecationsAsErrors)

	var opts []lexer.Option
	opts = append(opts, lexer.WithInternPool(d.pool), lexer.WithReporter(reporter), lexer.WithVendorInfo(vendorinfo.New(d.cfg)))
	if d.cfg.DeprecationsAsErrors {
		opts = append(opts, lexer.WithDeprecationsAsErrors())
	}
	if d.docComments {
		opts = append(opts, lexer.WithDocComments())
	}
	if d.commentTokens {
		opts = append(opts, lexer.WithCommentTokens())
	}

	lx, err := lexer.New(path, buf, opts...)
	if err != nil {
		return nil, err
	}

	var toks []*token.Token
	for {
		kind := lx.Next()
		tok := lx.Token()
		toks = append(toks, tok)
		if kind == token.KindEOF {
			break
		}
	}

	return &Result{Path: path, Tokens: toks, Exceptions: reporter.Reported(), HasErrors: reporter.HasErrors()}, nil
}

// MultiError aggregates several fatal errors raised lexing a batch of
// files into one error value.
type MultiError []error

func (m MultiError) Error() string {
	var b strings.Builder
	for i, err := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}
