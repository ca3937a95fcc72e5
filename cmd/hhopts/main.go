// FILE: lixenwraith/hhopts/cmd/hhopts/main.go

// Command hhopts resolves -v KEY=VALUE configuration entries into a
// configuration document keyed by canonical key.
//
// Usage:
//
//	hhopts -v hack.compiler.sourcemapping=true -v hhvm.include_roots=/a:/x,/b:/y
//	hhopts --format toml --nested -v eval.reffinessinvariance=1
//	hhopts aliases hhvm.reffiness_invariance
//	hhopts decoders
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/lixenwraith/hhopts"
	"github.com/spf13/cobra"
)

var errDroppedEntries = errors.New("malformed key/value entries dropped")

type options struct {
	vars    []string
	tables  string
	format  string
	nested  bool
	strict  bool
	verbose bool
	dump    bool
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing documents to out and diagnostics to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "hhopts",
		Short: "Resolve -v KEY=VALUE configuration entries",
		Long: `Resolve -v KEY=VALUE configuration entries.

Each key is rewritten to its canonical spelling when it is a known alias, and
its value is decoded as a string, integer, comma-separated list or
comma-separated key:value map depending on the canonical key. The result is
written as a single JSON, TOML or YAML document.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, out, errOut)
		},
	}

	flags := root.Flags()
	flags.StringArrayVarP(&opts.vars, "var", "v", nil, "configuration entry KEY=VALUE (repeatable)")
	flags.StringVar(&opts.format, "format", formatJSON, "output format: json, toml or yaml")
	flags.BoolVar(&opts.nested, "nested", false, "nest output by dot-separated key segments")
	flags.BoolVar(&opts.strict, "strict", false, "fail when key/value entries are dropped")
	flags.BoolVar(&opts.dump, "dump", false, "dump resolved entries to stderr")
	root.PersistentFlags().StringVar(&opts.tables, "tables", "", "extra alias/decoder table file (toml, yaml or json)")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log key rewrites and decoder choices")

	root.AddCommand(newAliasesCmd(opts, out), newDecodersCmd(opts, out))
	return root
}

func run(opts *options, out, errOut io.Writer) error {
	if !validFormat(opts.format) {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	logger := newLogger(errOut, opts.verbose)

	resolver, err := buildResolver(opts)
	if err != nil {
		return err
	}

	entries, err := resolver.ResolveArgs(opts.vars)
	if err != nil {
		return err
	}

	var dropped int
	for _, e := range entries {
		if e.Aliased() {
			logger.Debug("key canonicalized", "from", e.RawKey, "to", e.Key)
		}
		logger.Debug("value decoded", "key", e.Key, "decoder", e.Decoder.String(), "kind", e.Value.Kind().String())
		for _, d := range e.Dropped {
			logger.Warn("entry without ':' dropped", "key", e.Key, "entry", d)
			dropped++
		}
	}

	if opts.dump {
		spew.Fdump(errOut, entries)
	}

	if opts.strict && dropped > 0 {
		return fmt.Errorf("%w: %d", errDroppedEntries, dropped)
	}

	return writeDocument(out, assemble(entries, opts.nested), opts.format)
}

// buildResolver uses --tables when given, otherwise a discovered hhopts table
// file ($HHOPTS_TABLES, ./hhopts.toml, XDG config dirs).
func buildResolver(opts *options) (*hhopts.Resolver, error) {
	b := hhopts.NewBuilder()
	if opts.tables != "" {
		b.WithTableFile(opts.tables)
	} else {
		b.WithTableDiscovery(hhopts.DefaultTableDiscoveryOptions("hhopts"))
	}
	return b.Build()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newAliasesCmd(opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases [canonical-key]",
		Short: "List aliases, or the aliases of one canonical key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := buildResolver(opts)
			if err != nil {
				return err
			}
			aliases := resolver.Aliases()

			if len(args) == 1 {
				for _, alias := range aliases.AliasesOf(args[0]) {
					fmt.Fprintln(out, alias)
				}
				return nil
			}

			for _, e := range aliases.Entries() {
				fmt.Fprintf(out, "%s\t%s\n", e.Alias, e.Canonical)
			}
			return nil
		},
	}
}

func newDecodersCmd(opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "decoders",
		Short: "List keys bound to a non-default decoder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := buildResolver(opts)
			if err != nil {
				return err
			}
			for _, e := range resolver.Decoders().Entries() {
				fmt.Fprintf(out, "%s\t%s\n", e.Key, e.Decoder)
			}
			return nil
		},
	}
}
