package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RunSpec is one alignment run, either assembled from flags or loaded from
// a YAML preset file.
type RunSpec struct {
	Seq1     string  `yaml:"seq1"`
	Seq2     string  `yaml:"seq2"`
	Match    float64 `yaml:"match"`
	Mismatch float64 `yaml:"mismatch"`
	Gap      float64 `yaml:"gap"`
	Weights  string  `yaml:"weights"`
	Local    bool    `yaml:"local"`
}

// defaultRunSpec mirrors the flag defaults.
func defaultRunSpec() RunSpec {
	return RunSpec{Match: 1, Mismatch: -1, Gap: -1}
}

// LoadRunSpec reads a YAML preset. Fields absent from the file keep the
// flag defaults; unknown fields are rejected.
func LoadRunSpec(path string) (RunSpec, error) {
	spec := defaultRunSpec()

	raw, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("preset %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return spec, fmt.Errorf("preset %s: %w", path, err)
	}

	return spec, nil
}

// mergeRunSpec starts from the preset and lets every flag the user set
// explicitly win over it.
func mergeRunSpec(cmd *cobra.Command, preset, flags RunSpec) RunSpec {
	out := preset
	set := cmd.Flags().Changed

	if set("seq1") {
		out.Seq1 = flags.Seq1
	}
	if set("seq2") {
		out.Seq2 = flags.Seq2
	}
	if set("match") {
		out.Match = flags.Match
	}
	if set("mismatch") {
		out.Mismatch = flags.Mismatch
	}
	if set("gap") {
		out.Gap = flags.Gap
	}
	if set("weights") {
		out.Weights = flags.Weights
	}
	if set("local") {
		out.Local = flags.Local
	}

	return out
}
