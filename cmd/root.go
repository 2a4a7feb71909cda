// Package cmd contains the commands of the neuroconnect binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// NewRootCommand lets all child commands read configuration from CLI
// flags, environment variables prefixed with NEUROCONNECT, or a
// config.yaml in the working directory (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("NEUROCONNECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig() // a missing config file is fine

	root := &cobra.Command{
		Use:   "neuroconnect",
		Short: "Analyze directed graphs of inter-region neural connectivity",
		Long: `neuroconnect answers reachability questions over directed connectivity
graphs: which end neurons can a set of start neurons reach, optionally
within a bounded number of synaptic hops. Graphs are read either as an
adjacency list or as the four sparse block matrices (AA, AB, BA, BB) of a
two-group partition.`,
		SilenceUsage: true,
	}

	pflags := root.PersistentFlags()
	pflags.String(logLevelFlag, "info", "log level (debug, info, warn, error)")
	pflags.String(logFormatFlag, "text", "log format (text, json)")
	mustBindPFlag(logLevelFlag, pflags.Lookup(logLevelFlag))
	mustBindPFlag(logFormatFlag, pflags.Lookup(logFormatFlag))

	root.AddCommand(NewReachCommand())
	root.AddCommand(NewConvertCommand())
	root.AddCommand(NewVersionCommand())

	return root
}

// mustBindPFlag binds a registered flag to viper; a failure here is a
// programming error, not a runtime condition.
func mustBindPFlag(name string, flag *pflag.Flag) {
	if err := viper.BindPFlag(name, flag); err != nil {
		panic(err)
	}
}
