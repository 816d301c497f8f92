// Package cmd wires the hiltnlp command tree: turn segmentation, standalone
// speaker tagging, and causal-word tagging over GATE annotation files.
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hilt-lab/hiltnlp/config"
)

var (
	cfgFile  string
	logLevel string

	conf *config.Root
)

var rootCmd = &cobra.Command{
	Use:     "hiltnlp",
	Short:   "Turn segmentation and tagging for speaker-annotated GATE transcripts",
	Version: config.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		lvl := logLevel
		if lvl == "" {
			lvl = conf.Pipeline.LogLvl
		}
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			return err
		}
		log.SetLevel(parsed)
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
}
