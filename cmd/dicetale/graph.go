package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the word graph visualization",
	Long:  `Builds the model and outputs a Mermaid diagram (graph TD) of the word transitions, with die ranges as edge labels.`,
	Run: func(cmd *cobra.Command, args []string) {
		repoPath := repoPathFromFlags(cmd, args)

		engine, err := dicetale.New(repoPath)
		if err != nil {
			fmt.Printf("Error initializing dicetale: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(engine.Model()))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
