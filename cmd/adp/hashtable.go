package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adp/hashtable"
)

type hashTableConfiguration struct {
	Dataset    datasetFlags
	Capacity   int
	LoadFactor float64
	Get        []string
	Delete     []string
}

func newHashTableCmd(rootConfig *rootConfiguration) *cobra.Command {
	config := &hashTableConfiguration{}
	cmd := &cobra.Command{
		Use:   "hashtable",
		Short: "Load a string to integer-list dataset into the hash table and query it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHashTable(cmd, rootConfig, config)
		},
	}
	config.Dataset.register(cmd, "hashtabelsleutelswaardes")
	cmd.Flags().IntVar(&config.Capacity, "capacity", hashtable.DefaultCapacity, "initial number of slots")
	cmd.Flags().Float64Var(&config.LoadFactor, "load-factor", hashtable.DefaultLoadFactor, "resize threshold in (0, 1)")
	cmd.Flags().StringSliceVar(&config.Get, "get", nil, "keys to look up")
	cmd.Flags().StringSliceVar(&config.Delete, "delete", nil, "keys to delete before the lookups")

	return cmd
}

func runHashTable(cmd *cobra.Command, rootConfig *rootConfiguration, config *hashTableConfiguration) error {
	log := rootConfig.log
	c, err := config.Dataset.load()
	if err != nil {
		return err
	}
	entries, err := c.IntListMap(config.Dataset.Name)
	if err != nil {
		return err
	}

	t, err := hashtable.New[string, []int](hashtable.String,
		hashtable.WithCapacity(config.Capacity),
		hashtable.WithLoadFactor(config.LoadFactor))
	if err != nil {
		return err
	}
	for _, k := range sortedKeys(entries) {
		before := t.Cap()
		t.Insert(k, entries[k])
		if t.Cap() != before {
			log.Debug().Int("from", before).Int("to", t.Cap()).Msg("table resized")
		}
	}
	for _, k := range config.Delete {
		if err := t.Delete(k); err != nil {
			log.Warn().Err(err).Msg("delete failed")
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "size: %d\ncapacity: %d\nload factor: %.2f\n", t.Len(), t.Cap(), t.LoadFactor())
	for _, k := range config.Get {
		if v, ok := t.Lookup(k); ok {
			fmt.Fprintf(out, "%s: %v\n", k, v)
		} else {
			fmt.Fprintf(out, "%s: not found\n", k)
		}
	}

	return nil
}
