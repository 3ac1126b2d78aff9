package main

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
	"github.com/randalmurphal/urlargs/pkg/urlargs/table"
)

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	var (
		noColor bool
		fields  []string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print a table of the resolved values and their defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			sink := table.NewWriterSink(out, !noColor && isTerminal(out))

			doc, args, err := opts.resolve(cmd, urlargs.WithSink(sink))
			if err != nil {
				return err
			}

			dopts := []urlargs.DescribeOption{urlargs.WithMaxValueWidth(width)}
			if len(fields) > 0 {
				dopts = append(dopts, urlargs.WithFields(fields...))
			}
			args.Describe(doc.Descriptions, dopts...)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI styling")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "describe only these fields, in this order")
	cmd.Flags().IntVar(&width, "width", urlargs.DefaultMaxValueWidth, "truncate value literals wider than this (0 disables)")
	return cmd
}
