package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hilt-lab/hiltnlp/gate"
	"github.com/hilt-lab/hiltnlp/turns"
)

var (
	turnsInputs    []string
	turnsOverwrite bool
	turnsSave      bool
	turnsExport    string
	turnsOut       string
)

var turnsCmd = &cobra.Command{
	Use:   "turns",
	Short: "Segment annotation files into speaker turns",
	RunE: func(cmd *cobra.Command, args []string) error {
		if turnsExport != "" && turnsExport != "json" && turnsExport != "yaml" {
			return fmt.Errorf("unknown export format %q (want json or yaml)", turnsExport)
		}
		for _, path := range turnsInputs {
			doc, err := gate.Load(path)
			if err != nil {
				return err
			}
			sentences := turns.Sentences(doc)
			seg, err := turns.Extract(sentences, turnsOverwrite, conf.Media.Extensions...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.WithFields(log.Fields{
				"file":      path,
				"sentences": len(sentences),
				"turns":     seg.Len(),
			}).Info("segmented")

			for _, t := range seg.Turns() {
				log.WithFields(log.Fields{
					"speaker": t.Speaker(),
					"span":    fmt.Sprintf("[%d,%d)", t.StartOffset(), t.EndOffset()),
				}).Debugf("turn with %d sentences", t.Len())
			}

			if turnsExport != "" {
				outDir := turnsOut
				if outDir == "" {
					outDir = conf.Paths.Outputs
				}
				written, err := exportTurns(outDir, path, seg.Turns(), turnsExport)
				if err != nil {
					return err
				}
				log.WithField("path", written).Info("exported turns")
			}
			if turnsSave {
				if err := doc.SaveChanges(); err != nil {
					return err
				}
				log.WithField("file", path).Info("saved features")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(turnsCmd)
	turnsCmd.Flags().StringArrayVarP(&turnsInputs, "annotation-file", "i", nil, "GATE annotation files")
	turnsCmd.Flags().BoolVar(&turnsOverwrite, "overwrite", false, "replace existing Speaker/Turn_head features")
	turnsCmd.Flags().BoolVar(&turnsSave, "save", false, "write tagged features back to the XML file")
	turnsCmd.Flags().StringVar(&turnsExport, "export", "", "export turns as json or yaml")
	turnsCmd.Flags().StringVar(&turnsOut, "out", "", "output directory (default from config)")
	_ = turnsCmd.MarkFlagRequired("annotation-file")
}
