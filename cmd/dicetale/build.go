package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/dicetale"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the model and export it",
	Long: `Reads the corpus, builds the transition model and writes it out as JSON
or YAML. The export is deterministic: the same corpus always produces the
same bytes, so the output can live under version control next to the corpus.`,
	Run: func(cmd *cobra.Command, args []string) {
		repoPath := repoPathFromFlags(cmd, args)
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")

		engine, err := dicetale.New(repoPath)
		if err != nil {
			fmt.Printf("Error initializing dicetale: %v\n", err)
			os.Exit(1)
		}

		for _, w := range engine.Warnings() {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}

		var data []byte
		switch format {
		case "json":
			data, err = json.MarshalIndent(engine.Model(), "", "  ")
			if err == nil {
				data = append(data, '\n')
			}
		case "yaml":
			data, err = yaml.Marshal(engine.Model())
		default:
			fmt.Printf("Unknown format: %s. Supported: json, yaml\n", format)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("Error exporting model: %v\n", err)
			os.Exit(1)
		}

		if outPath == "" || outPath == "-" {
			fmt.Print(string(data))
			return
		}

		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			fmt.Printf("Error writing %s: %v\n", outPath, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "model written to %s\n", outPath)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("format", "f", "json", "Export format: 'json' or 'yaml'")
	buildCmd.Flags().StringP("output", "o", "", "Output file (stdout if omitted)")
}
