package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adp/avl"
)

type avlConfiguration struct {
	Dataset datasetFlags
	Remove  []int
	Print   bool
}

func newAVLCmd(rootConfig *rootConfiguration) *cobra.Command {
	config := &avlConfiguration{}
	cmd := &cobra.Command{
		Use:   "avl",
		Short: "Insert the integers of a dataset into an AVL tree and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAVL(cmd, rootConfig, config)
		},
	}
	config.Dataset.register(cmd, "lijst_willekeurig_3")
	cmd.Flags().IntSliceVar(&config.Remove, "remove", nil, "keys to remove after loading")
	cmd.Flags().BoolVar(&config.Print, "print", false, "print the tree sideways")

	return cmd
}

func runAVL(cmd *cobra.Command, rootConfig *rootConfiguration, config *avlConfiguration) error {
	log := rootConfig.log
	c, err := config.Dataset.load()
	if err != nil {
		return err
	}
	keys, err := c.Ints(config.Dataset.Name)
	if err != nil {
		return err
	}

	t := avl.New[int]()
	for _, k := range keys {
		if err := t.Insert(k); err != nil {
			if errors.Is(err, avl.ErrDuplicateKey) {
				log.Warn().Int("key", k).Msg("duplicate key skipped")
				continue
			}
			return err
		}
	}
	for _, k := range config.Remove {
		if !t.Remove(k) {
			log.Warn().Int("key", k).Msg("key to remove not found")
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "size: %d\nheight: %d\nbalanced: %t\n", t.Len(), t.Height(), t.IsBalanced())
	if lo, err := t.Min(); err == nil {
		hi, _ := t.Max()
		fmt.Fprintf(out, "min: %d\nmax: %d\n", lo, hi)
	} else {
		fmt.Fprintln(out, "min: -\nmax: -")
	}
	if config.Print {
		return t.Print(out)
	}

	return nil
}
