package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hilt-lab/hiltnlp/causation"
	"github.com/hilt-lab/hiltnlp/gate"
)

var (
	causalInputs []string
	causalSave   bool
)

var causalCmd = &cobra.Command{
	Use:   "causal",
	Short: "Annotate causal connective words over the document's tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		words := conf.Causation.Words
		if len(words) == 0 {
			words = causation.DefaultWords
		}
		threshold := conf.Causation.Threshold
		if threshold == 0 {
			threshold = causation.DefaultThreshold
		}
		for _, path := range causalInputs {
			doc, err := gate.Load(path)
			if err != nil {
				return err
			}
			count, err := causation.Tag(doc, words, threshold)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"file":  path,
				"words": count,
			}).Info("tagged causal words")
			if causalSave {
				if err := doc.SaveChanges(); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(causalCmd)
	causalCmd.Flags().StringArrayVarP(&causalInputs, "annotation-file", "i", nil, "GATE annotation files")
	causalCmd.Flags().BoolVar(&causalSave, "save", false, "write new annotations back to the XML file")
	_ = causalCmd.MarkFlagRequired("annotation-file")
}
