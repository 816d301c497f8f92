package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hilt-lab/hiltnlp/turns"
)

type exportBundle struct {
	File        string         `json:"file" yaml:"file"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Turns       []turns.Record `json:"turns" yaml:"turns"`
}

func mkSessionDir(outputsRoot string) (string, error) {
	ts := time.Now().Format("20060102-150405")
	dir := filepath.Join(outputsRoot, "session_"+ts)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(v)
}

// exportTurns writes the segmentation of one annotation file into a
// timestamped session directory and returns the written path.
func exportTurns(outputsRoot, annotationPath string, ts []*turns.Turn, format string) (string, error) {
	dir, err := mkSessionDir(outputsRoot)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(annotationPath), filepath.Ext(annotationPath))
	out := filepath.Join(dir, base+"_turns."+format)

	bundle := exportBundle{
		File:        annotationPath,
		GeneratedAt: time.Now(),
		Turns:       turns.Records(ts),
	}
	if format == "yaml" {
		err = writeYAML(out, bundle)
	} else {
		err = writeJSON(out, bundle)
	}
	if err != nil {
		return "", err
	}
	return out, nil
}
