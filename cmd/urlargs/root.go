package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
	"github.com/randalmurphal/urlargs/pkg/urlargs/schema"
	"github.com/randalmurphal/urlargs/pkg/urlargs/table"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	schemaPath string
	query      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "urlargs",
		Short:        "Resolve URL query arguments against a schema of defaults.",
		Long:         "Resolve URL query arguments against a schema of typed defaults, falling back to the default for values that do not parse.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.schemaPath, "schema", "s", "", "schema file (.yaml, .yml or .json)")
	cmd.PersistentFlags().StringVarP(&opts.query, "query", "q", "", "raw query string or full URL")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(
		newResolveCmd(opts),
		newDescribeCmd(opts),
		newTransformsCmd(),
	)
	return cmd
}

// logger writes to the command's stderr so warnings never mix with output.
func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *rootOptions) load() (*schema.Document, error) {
	if o.schemaPath == "" {
		return nil, errors.New("a schema file is required (--schema)")
	}
	return schema.FromFile(o.schemaPath)
}

// resolve loads the schema and resolves the query flag against it.
func (o *rootOptions) resolve(cmd *cobra.Command, extra ...urlargs.Option) (*schema.Document, *urlargs.Args, error) {
	doc, err := o.load()
	if err != nil {
		return nil, nil, err
	}
	raw, err := rawQuery(o.query)
	if err != nil {
		return nil, nil, err
	}

	opts := append([]urlargs.Option{
		urlargs.WithLogger(o.logger(cmd)),
		urlargs.WithContext(cmd.Context()),
	}, extra...)

	args, err := urlargs.New(doc.Schema, raw, opts...)
	if err != nil {
		return nil, nil, err
	}
	return doc, args, nil
}

// rawQuery returns the query part of s when s is a full URL, otherwise s.
// s is a URL only when its first "://" precedes any '=', '&' or '?', so a raw
// query carrying a URL as a value stays a raw query.
func rawQuery(s string) (string, error) {
	sep := strings.Index(s, "://")
	if sep < 0 {
		return s, nil
	}
	if q := strings.IndexAny(s, "=&?"); q >= 0 && q < sep {
		return s, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	return u.RawQuery, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && table.IsTerminal(f)
}
