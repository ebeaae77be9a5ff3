package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/vesper-lang/vesperc/internal/config"
	"github.com/vesper-lang/vesperc/internal/driver"
	"github.com/vesper-lang/vesperc/internal/token"
)

type opts struct {
	DumpTokens           bool
	DeprecationsAsErrors bool
	Vendor               string
	Version              string
	DocComments          bool
	CommentTokens        bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("vesperc", pflag.PanicOnError)
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream as it is scanned")
	flags.BoolVar(&op.DeprecationsAsErrors, "deprecations-as-errors", false, "Treat deprecation diagnostics as fatal errors")
	flags.StringVar(&op.Vendor, "vendor", config.DefaultVendor, "Value substituted for __VENDOR__")
	flags.StringVar(&op.Version, "version", config.DefaultVersion, "Value substituted for __VERSION__, as MAJOR.MINOR")
	flags.BoolVar(&op.DocComments, "doc-comments", false, "Attach /** /++ /// doc comments to the following token")
	flags.BoolVar(&op.CommentTokens, "comment-tokens", false, "Emit every comment as its own token instead of skipping it")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "vesperc: no input files")
		os.Exit(1)
	}

	cfgOpts := []config.Option{config.WithVendor(op.Vendor), config.WithVersion(op.Version)}
	if op.DeprecationsAsErrors {
		cfgOpts = append(cfgOpts, config.WithDeprecationsAsErrors())
	}
	cfg := config.New(cfgOpts...)

	var driverOpts []driver.Option
	driverOpts = append(driverOpts, driver.WithConfig(cfg))
	if op.DocComments {
		driverOpts = append(driverOpts, driver.WithDocComments())
	}
	if op.CommentTokens {
		driverOpts = append(driverOpts, driver.WithCommentTokens())
	}
	d := driver.New(driverOpts...)

	results, err := d.LexAll(ctx, targets)
	if err != nil {
		var me driver.MultiError
		if errors.As(err, &me) {
			for _, err := range me {
				fmt.Fprintln(os.Stderr, err.Error())
			}
			os.Exit(1)
		}
		panic(err)
	}

	exitCode := 0
	for _, r := range results {
		if op.DumpTokens {
			dumpTokens(r.Path, r.Tokens)
		}
		for _, e := range r.Exceptions {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		if r.HasErrors {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func dumpTokens(path string, toks []*token.Token) {
	for _, tok := range toks {
		fmt.Printf("%-28s %-8s", tok.Kind, path)
		switch {
		case tok.Kind == token.KindIdentifier || tok.Kind.IsKeyword():
			fmt.Printf(" ident=%d", tok.Ident)
		case tok.Kind == token.KindString || tok.Kind == token.KindHexString || tok.Kind == token.KindComment:
			fmt.Printf(" %q", tok.StringValue)
		case tok.Kind == token.KindCharV || tok.Kind == token.KindWCharV || tok.Kind == token.KindDCharV:
			fmt.Printf(" %q", rune(tok.IntValue))
		case tok.Kind == token.KindFloat32 || tok.Kind == token.KindFloat64 || tok.Kind == token.KindFloat80 ||
			tok.Kind == token.KindImaginary32 || tok.Kind == token.KindImaginary64 || tok.Kind == token.KindImaginary80:
			fmt.Printf(" %g", tok.FloatValue)
		case tok.Kind == token.KindIntegerI32 || tok.Kind == token.KindIntegerU32 ||
			tok.Kind == token.KindIntegerI64 || tok.Kind == token.KindIntegerU64:
			fmt.Printf(" %d", tok.IntValue)
		}
		if doc := tok.BlockComment.OrElse(tok.LineComment.OrElse("")); doc != "" {
			fmt.Printf(" doc=%q", doc)
		}
		fmt.Println()
		if tok.Kind == token.KindEOF {
			break
		}
	}
}
