package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adp/dataset"
)

const (
	keyDataset = "dataset"
	keyName    = "name"
)

// datasetFlags selects one named dataset in a file.
type datasetFlags struct {
	Path string
	Name string
}

func (f *datasetFlags) register(cmd *cobra.Command, defaultName string) {
	cmd.Flags().StringVar(&f.Path, keyDataset, "", "dataset file (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&f.Name, keyName, defaultName, "dataset name inside the file")
}

func (f *datasetFlags) load() (*dataset.Collection, error) {
	if f.Path == "" {
		return nil, fmt.Errorf("--%s is required", keyDataset)
	}
	c, err := dataset.Load(f.Path)
	if err != nil {
		return nil, err
	}
	if !c.Has(f.Name) {
		return nil, fmt.Errorf("%w: %q (available: %v)", dataset.ErrKeyNotFound, f.Name, c.Names())
	}

	return c, nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
