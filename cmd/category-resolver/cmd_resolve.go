package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"category-resolver/internal/compose"
	"category-resolver/internal/hierarchy"
	"category-resolver/internal/report"
)

func newLinearizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "linearize [category...]",
		Short: "Print the C3 ancestor order of categories (all when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, lin, err := opts.linearizer(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = lin.Names()
			}

			out := make([]report.Linearization, 0, len(args))

			for _, name := range args {
				order, err := lin.Linearize(name)
				if err != nil {
					return err
				}

				out = append(out, report.Linearization{Category: name, Order: order})
			}

			return opts.emit(cmd, s, out)
		},
	}
}

func newEffectiveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "effective category...",
		Short: "Print categories with every inherited attribute and metadata folded in",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, lin, err := opts.linearizer(cmd.Context())
			if err != nil {
				return err
			}

			out := make([]report.Effective, 0, len(args))

			for _, name := range args {
				eff, err := lin.Effective(name)
				if err != nil {
					return err
				}

				if !lin.Known(name) {
					opts.logger.Warn("unknown category, using an empty record", "category", name)
				}

				meta, err := lin.EffectiveMetadata(name)
				if err != nil {
					return err
				}

				opts.dump(cmd.ErrOrStderr(), eff, meta)

				out = append(out, report.Effective{Category: eff, Metadata: meta})
			}

			return opts.emit(cmd, s, out)
		},
	}
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [category...]",
		Short: "Combine categories into one attribute set with source attribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, lin, err := opts.linearizer(cmd.Context())
			if err != nil {
				return err
			}

			res, err := compose.New(lin, compose.WithLogger(opts.logger)).Resolve(args)
			if err != nil {
				return err
			}

			opts.dump(cmd.ErrOrStderr(), res.View())

			return opts.emit(cmd, s, res)
		},
	}
}

func newOrderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print every category with parents before children",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			records, err := s.CategoryRecords()
			if err != nil {
				return fmt.Errorf("invalid schema (run check for details): %w", err)
			}

			order, err := hierarchy.Order(records)
			if err != nil {
				return err
			}

			return opts.emit(cmd, s, report.Order(order))
		},
	}
}
