package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConvertCommand builds the `convert` subcommand: block quadruple in,
// adjacency list out, for matrix-oriented upstreams feeding graph tooling.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a block-matrix quadruple to an adjacency-list graph",
		RunE:  runConvert,
		Args:  cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.String(blocksFlag, "", "path to a block-quadruple YAML file")
	flags.String(quadrantsFlag, "", "quadrants to include, e.g. \"AB,AA\" (default all)")
	_ = cmd.MarkFlagRequired(blocksFlag)

	return cmd
}

func runConvert(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	blocksPath, _ := flags.GetString(blocksFlag)
	quadrants, _ := flags.GetString(quadrantsFlag)

	sel, err := parseSelector(quadrants)
	if err != nil {
		return err
	}
	g, err := loadInput("", blocksPath, sel)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(graphDoc{Vertices: g.Adjacency()})
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
