package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hilt-lab/hiltnlp/gate"
	"github.com/hilt-lab/hiltnlp/turns"
)

var (
	speakersInputs    []string
	speakersOverwrite bool
	speakersSave      bool
	speakersHeads     bool
)

var speakersCmd = &cobra.Command{
	Use:   "speakers",
	Short: "Tag sentence speakers without assembling turns",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range speakersInputs {
			doc, err := gate.Load(path)
			if err != nil {
				return err
			}
			sentences := turns.Sentences(doc)
			if err := turns.TagSpeakers(sentences, speakersOverwrite, conf.Media.Extensions...); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if speakersHeads {
				if err := turns.TagTurnHeads(sentences, speakersOverwrite); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			log.WithFields(log.Fields{
				"file":      path,
				"sentences": len(sentences),
			}).Info("tagged speakers")
			if speakersSave {
				if err := doc.SaveChanges(); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(speakersCmd)
	speakersCmd.Flags().StringArrayVarP(&speakersInputs, "annotation-file", "i", nil, "GATE annotation files")
	speakersCmd.Flags().BoolVar(&speakersOverwrite, "overwrite", false, "replace existing Speaker features")
	speakersCmd.Flags().BoolVar(&speakersSave, "save", false, "write tagged features back to the XML file")
	speakersCmd.Flags().BoolVar(&speakersHeads, "heads", false, "also tag Turn_head on every sentence")
	_ = speakersCmd.MarkFlagRequired("annotation-file")
}
