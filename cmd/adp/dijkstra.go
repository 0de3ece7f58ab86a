package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adp/builder"
	"github.com/katalvlaran/adp/core"
	"github.com/katalvlaran/adp/dataset"
	"github.com/katalvlaran/adp/dijkstra"
)

const (
	formatEdgeList          = string(builder.ShapeEdgeList)
	formatAdjacencyList     = string(builder.ShapeAdjacencyList)
	formatWeightedAdjacency = string(builder.ShapeWeightedAdjacencyList)
	formatAdjacencyMatrix   = string(builder.ShapeAdjacencyMatrix)
)

type dijkstraConfiguration struct {
	Dataset    datasetFlags
	Format     string
	Source     int
	Target     int
	Undirected bool
}

func newDijkstraCmd(rootConfig *rootConfiguration) *cobra.Command {
	config := &dijkstraConfiguration{}
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Build a graph from a dataset and print shortest distances from a source vertex",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDijkstra(cmd, rootConfig, config)
		},
	}
	config.Dataset.register(cmd, "lijnlijst_gewogen")
	cmd.Flags().StringVar(&config.Format, "format", formatEdgeList,
		fmt.Sprintf("dataset shape: %s, %s, %s or %s", formatEdgeList, formatAdjacencyList, formatWeightedAdjacency, formatAdjacencyMatrix))
	cmd.Flags().IntVar(&config.Source, "source", 0, "source vertex id")
	cmd.Flags().IntVar(&config.Target, "target", 0, "print the shortest path to this vertex")
	cmd.Flags().BoolVar(&config.Undirected, "undirected", false, "mirror every edge")

	return cmd
}

func runDijkstra(cmd *cobra.Command, rootConfig *rootConfiguration, config *dijkstraConfiguration) error {
	log := rootConfig.log
	c, err := config.Dataset.load()
	if err != nil {
		return err
	}

	g := core.NewGraph(core.WithDirected(!config.Undirected))
	if err := buildGraph(g, c, config.Dataset.Name, config.Format); err != nil {
		return err
	}
	log.Info().
		Str("dataset", config.Dataset.Name).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph built")

	if err := dijkstra.Dijkstra(g, config.Source); err != nil {
		return fmt.Errorf("dijkstra from %d: %w", config.Source, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Shortest distances from %d:\n", config.Source)
	dist := dijkstra.Distances(g)
	for _, id := range g.Vertices() {
		fmt.Fprintf(out, "To Vertex %d: %s\n", id, formatDistance(dist[id]))
	}

	if cmd.Flags().Changed("target") {
		path, err := dijkstra.ShortestPath(g, config.Target)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Path to %d: %v (distance %s)\n", config.Target, path, formatDistance(dist[config.Target]))
	}

	return nil
}

// buildGraph fills g from the named dataset in the given shape.
func buildGraph(g *core.Graph, c *dataset.Collection, name, format string) error {
	switch format {
	case formatEdgeList, formatAdjacencyList, formatAdjacencyMatrix:
		rows, err := c.IntMatrix(name)
		if err != nil {
			return err
		}
		switch format {
		case formatEdgeList:
			return g.BuildFromEdgeList(rows)
		case formatAdjacencyList:
			return g.BuildFromAdjacencyList(rows)
		default:
			return g.BuildFromAdjacencyMatrix(rows)
		}
	case formatWeightedAdjacency:
		rows, err := c.IntCube(name)
		if err != nil {
			return err
		}
		return g.BuildFromWeightedAdjacencyList(rows)
	}

	return fmt.Errorf("unknown graph format %q", format)
}

func formatDistance(d int64) string {
	if d == core.Infinity {
		return "∞"
	}

	return fmt.Sprint(d)
}
