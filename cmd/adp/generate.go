package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adp/builder"
	"github.com/katalvlaran/adp/dataset"
)

type generateConfiguration struct {
	Vertices  int
	Edges     int
	Shape     string
	Seed      int64
	MinWeight int
	MaxWeight int
	Name      string
	Output    string
	Format    string
}

func newGenerateCmd(rootConfig *rootConfiguration) *cobra.Command {
	config := &generateConfiguration{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random graph dataset that the dijkstra command can load",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootConfig, config)
		},
	}
	cmd.Flags().IntVar(&config.Vertices, "vertices", 10, "number of vertices")
	cmd.Flags().IntVar(&config.Edges, "edges", 20, "number of edges to draw")
	cmd.Flags().StringVar(&config.Shape, "shape", formatEdgeList,
		fmt.Sprintf("dataset shape: %s, %s, %s or %s", formatEdgeList, formatAdjacencyList, formatWeightedAdjacency, formatAdjacencyMatrix))
	cmd.Flags().Int64Var(&config.Seed, "seed", builder.DefaultSeed, "random seed")
	cmd.Flags().IntVar(&config.MinWeight, "min-weight", builder.DefaultMinWeight, "smallest edge weight")
	cmd.Flags().IntVar(&config.MaxWeight, "max-weight", builder.DefaultMaxWeight, "largest edge weight")
	cmd.Flags().StringVar(&config.Name, keyName, "generated", "dataset name inside the file")
	cmd.Flags().StringVarP(&config.Output, "output", "o", "", "output file; stdout when empty")
	cmd.Flags().StringVar(&config.Format, "output-format", "",
		"json or yaml; taken from the output extension when empty, json for stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, rootConfig *rootConfiguration, config *generateConfiguration) error {
	log := rootConfig.log
	format, err := config.outputFormat()
	if err != nil {
		return err
	}
	if config.MinWeight < 1 || config.MaxWeight < config.MinWeight {
		return fmt.Errorf("invalid weight range [%d, %d]", config.MinWeight, config.MaxWeight)
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(config.Seed),
		builder.WithWeightRange(config.MinWeight, config.MaxWeight),
	}
	var value any
	switch builder.Shape(config.Shape) {
	case builder.ShapeEdgeList:
		value, err = builder.EdgeList(config.Vertices, config.Edges, opts...)
	case builder.ShapeAdjacencyList:
		value, err = builder.AdjacencyList(config.Vertices, config.Edges, opts...)
	case builder.ShapeWeightedAdjacencyList:
		value, err = builder.WeightedAdjacencyList(config.Vertices, config.Edges, opts...)
	case builder.ShapeAdjacencyMatrix:
		value, err = builder.AdjacencyMatrix(config.Vertices, config.Edges, opts...)
	default:
		return fmt.Errorf("unknown graph format %q", config.Shape)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), config.Output, format, map[string]any{config.Name: value}); err != nil {
		return err
	}
	log.Info().
		Str("shape", config.Shape).
		Int("vertices", config.Vertices).
		Int("edges", config.Edges).
		Int64("seed", config.Seed).
		Str("output", config.Output).
		Msg("dataset written")

	return nil
}

// writeOutput writes entries to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, format dataset.Format, entries map[string]any) (err error) {
	w := stdout
	if path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return fmt.Errorf("creating output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		w = f
	}
	if err = dataset.Write(w, format, entries); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	return nil
}

func (c *generateConfiguration) outputFormat() (dataset.Format, error) {
	switch {
	case c.Format != "":
		f := dataset.Format(c.Format)
		if f != dataset.FormatJSON && f != dataset.FormatYAML {
			return "", fmt.Errorf("%w: %q", dataset.ErrUnsupportedFormat, c.Format)
		}
		return f, nil
	case c.Output != "":
		return dataset.FormatOf(c.Output)
	}

	return dataset.FormatJSON, nil
}
