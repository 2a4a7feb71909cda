package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/seankmartin/SKMNeuralConnections/logging"
	"github.com/seankmartin/SKMNeuralConnections/reach"
)

const (
	graphFlag       = "graph"
	blocksFlag      = "blocks"
	quadrantsFlag   = "quadrants"
	sourcesFlag     = "sources"
	sinksFlag       = "sinks"
	maxDepthFlag    = "max-depth"
	parallelismFlag = "parallelism"
)

// NewReachCommand builds the `reach` subcommand: which sinks can the
// source set reach, optionally within a bounded number of hops.
func NewReachCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Compute the sinks reachable from a set of source neurons",
		Long: `Compute which of the given sink neurons are reachable from any of the
given source neurons. With --max-depth the query is bounded to that many
forward hops (searched backward on the reverse graph); without it the
search depth is unbounded.`,
		RunE: runReach,
		Args: cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.String(graphFlag, "", "path to an adjacency-list YAML graph")
	flags.String(blocksFlag, "", "path to a block-quadruple YAML file")
	flags.String(quadrantsFlag, "", "quadrants to include from --blocks, e.g. \"AB,AA\" (default all)")
	flags.String(sourcesFlag, "", "comma-separated source vertices, e.g. \"0,1,2\"")
	flags.String(sinksFlag, "", "comma-separated sink vertices")
	flags.Int(maxDepthFlag, -1, "maximum path depth; negative means unbounded")
	flags.Int(parallelismFlag, 1, "goroutines for per-sink fan-out")

	return cmd
}

func runReach(cmd *cobra.Command, _ []string) error {
	log, err := logging.New(viper.GetString(logLevelFlag), viper.GetString(logFormatFlag))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	flags := cmd.Flags()
	graphPath, _ := flags.GetString(graphFlag)
	blocksPath, _ := flags.GetString(blocksFlag)
	quadrants, _ := flags.GetString(quadrantsFlag)
	srcSpec, _ := flags.GetString(sourcesFlag)
	sinkSpec, _ := flags.GetString(sinksFlag)
	maxDepth, _ := flags.GetInt(maxDepthFlag)
	parallelism, _ := flags.GetInt(parallelismFlag)

	sel, err := parseSelector(quadrants)
	if err != nil {
		return err
	}
	g, err := loadInput(graphPath, blocksPath, sel)
	if err != nil {
		return err
	}
	sources, err := parseVertexList(srcSpec)
	if err != nil {
		return err
	}
	sinks, err := parseVertexList(sinkSpec)
	if err != nil {
		return err
	}

	log.Info("running reachability query",
		zap.Int("vertices", g.Order()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("sources", len(sources)),
		zap.Int("sinks", len(sinks)),
		zap.Int("max_depth", maxDepth),
	)

	opts := []reach.Option{
		reach.WithContext(cmd.Context()),
		reach.WithParallelism(parallelism),
	}

	start := time.Now()
	var reachable []int
	if maxDepth < 0 {
		reachable, err = reach.FindConnected(g, sources, sinks, opts...)
	} else {
		reachable, err = reach.FindConnectedLimited(g, sources, sinks, maxDepth, opts...)
	}
	if err != nil {
		return err
	}

	log.Info("query finished",
		zap.Int("reachable", len(reachable)),
		zap.Duration("elapsed", time.Since(start)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), reachable)
	return nil
}
