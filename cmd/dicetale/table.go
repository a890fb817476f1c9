package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/internal/cli"
	"github.com/aretw0/dicetale/internal/presentation/table"
	"github.com/aretw0/dicetale/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the dice transition table",
	Long: `Builds the model and prints the full roll-to-word table as rendered
markdown: one section per word, one row per die range. Use --raw to get
plain markdown for pasting into a handout, or --watch to keep the table
on screen while editing the corpus.`,
	Run: func(cmd *cobra.Command, args []string) {
		repoPath := repoPathFromFlags(cmd, args)
		raw, _ := cmd.Flags().GetBool("raw")
		watchMode, _ := cmd.Flags().GetBool("watch")
		debug, _ := cmd.Flags().GetBool("debug")

		if watchMode {
			if err := cli.RunWatch(cli.WatchOptions{RepoPath: repoPath, Debug: debug}); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		engine, err := dicetale.New(repoPath)
		if err != nil {
			fmt.Printf("Error initializing dicetale: %v\n", err)
			os.Exit(1)
		}

		md := table.Render(engine.Model(), engine.Warnings())
		if raw {
			fmt.Print(md)
			return
		}

		render := tui.NewRenderer()
		out, err := render(md)
		if err != nil {
			fmt.Print(md)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().Bool("raw", false, "Print plain markdown without terminal styling")
	tableCmd.Flags().BoolP("watch", "w", false, "Re-render the table when the corpus changes")
}
