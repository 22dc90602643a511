package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"category-resolver/internal/hierarchy"
	"category-resolver/internal/report"
	"category-resolver/internal/schema"
)

// options holds the persistent flags shared by every command.
type options struct {
	schemas []string
	output  string
	outFile string
	debug   bool
	noColor bool
	lenient bool

	format report.Format
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "category-resolver",
		Short:         "Resolve multiple-inheritance category schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, err := report.ParseFormat(opts.output)
			if err != nil {
				return err
			}

			opts.format = format

			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}

			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringArrayVarP(&opts.schemas, "schema", "s", nil, "schema file or directory (repeatable)")
	flags.StringVarP(&opts.output, "output", "o", string(report.FormatText), "output format: text, json or yaml")
	flags.StringVar(&opts.outFile, "out", "", "write output to this file instead of stdout")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging and record dumps")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&opts.lenient, "lenient", false, "treat missing parents as empty categories and skip attribute reference checks")

	root.AddCommand(
		newCheckCmd(opts),
		newLinearizeCmd(opts),
		newEffectiveCmd(opts),
		newResolveCmd(opts),
		newOrderCmd(opts),
	)

	return root
}

// load reads every schema source.
func (o *options) load(ctx context.Context) (*schema.Schema, error) {
	if len(o.schemas) == 0 {
		return nil, errors.New("no schema sources given (use --schema)")
	}

	s, err := schema.Load(ctx, o.schemas...)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("schema loaded",
		slog.Any("sources", s.Sources()),
		slog.String("digest", s.Digest()),
		slog.Int("categories", len(s.Categories)))

	return s, nil
}

// linearizer loads the schema and builds a Linearizer over its records.
// Attribute references are checked against the schema's subobjects and, when
// any are declared, its properties.
func (o *options) linearizer(ctx context.Context) (*schema.Schema, *hierarchy.Linearizer, error) {
	s, err := o.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.CategoryRecords()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid schema (run check for details): %w", err)
	}

	subobjects, err := s.SubobjectRecords()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid schema (run check for details): %w", err)
	}

	hopts := []hierarchy.Option{
		hierarchy.WithLogger(o.logger),
		hierarchy.WithSubobjects(subobjects),
		hierarchy.WithProperties(s.PropertyNames()),
	}
	if o.lenient {
		hopts = append(hopts, hierarchy.WithLenientReferences())
	}

	return s, hierarchy.New(records, hopts...), nil
}

// emit renders v, wrapped with the schema identity, to stdout or --out.
func (o *options) emit(cmd *cobra.Command, s *schema.Schema, v any) error {
	doc := report.Document{Digest: s.Digest(), Sources: s.Sources(), Data: v}

	if o.outFile != "" {
		var buf bytes.Buffer
		if err := report.Render(&buf, o.format, doc); err != nil {
			return err
		}

		return report.WriteFile(o.outFile, buf.Bytes())
	}

	w := cmd.OutOrStdout()
	if o.noColor {
		return report.NewRenderer(o.format).Render(w, doc)
	}

	return report.Render(w, o.format, doc)
}

// dump writes a spew dump of values to stderr when --debug is set.
func (o *options) dump(w io.Writer, values ...any) {
	if !o.debug {
		return
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	cfg.Fdump(w, values...)
}
