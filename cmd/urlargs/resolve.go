package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved values in schema order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, args, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "json":
				out, err = json.MarshalIndent(args.Values(), "", "  ")
				if err == nil {
					out = append(out, '\n')
				}
			case "yaml":
				out, err = valuesYAML(args.Values())
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode values: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

// valuesYAML encodes values as a YAML mapping in schema order.
func valuesYAML(v urlargs.Values) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range v.Keys() {
		var value yaml.Node
		if err := value.Encode(v.Any(key, nil)); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}
	return yaml.Marshal(root)
}
