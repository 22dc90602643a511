package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"category-resolver/internal/check"
	"category-resolver/internal/schema"
)

func newCheckCmd(opts *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report structural problems in the schema",
		Long: `Check loads every schema source and reports invalid names, duplicates,
dangling references, inheritance cycles and inconsistent parent orders as
errors, and likely mistakes as warnings. The exit status is 1 when any error
is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runCheck(cmd, opts)
			if !watch {
				return err
			}

			if err != nil && !errors.Is(err, errFindings) {
				opts.logger.Error("check failed", slog.Any("error", err))
			}

			opts.logger.Info("watching schema sources", slog.Any("paths", opts.schemas))

			return schema.Watch(cmd.Context(), opts.schemas, schema.DefaultDebounce, func(changed []string) {
				opts.logger.Info("schema changed", slog.Any("files", changed))

				if err := runCheck(cmd, opts); err != nil && !errors.Is(err, errFindings) {
					opts.logger.Error("check failed", slog.Any("error", err))
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the check whenever a schema source changes")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *options) error {
	s, err := opts.load(cmd.Context())
	if err != nil {
		return err
	}

	d := check.Check(s)

	if err := opts.emit(cmd, s, d); err != nil {
		return err
	}

	if d.HasErrors() {
		return errFindings
	}

	return nil
}
