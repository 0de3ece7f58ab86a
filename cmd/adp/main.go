// Command adp loads datasets and runs the AVL tree, hash table and Dijkstra
// implementations on them.
package main

import "github.com/spf13/cobra"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
