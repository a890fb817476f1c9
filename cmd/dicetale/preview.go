package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dicetale/internal/cli"
	"github.com/spf13/cobra"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate sample stories with a seeded die",
	Long: `Rolls a pseudo-random die for you and prints complete stories, so a
corpus author can see what kind of sentences the table produces. The seed
is printed with the output; pass --seed to reproduce a previous run.`,
	Run: func(cmd *cobra.Command, args []string) {
		repoPath := repoPathFromFlags(cmd, args)
		start, _ := cmd.Flags().GetString("start")
		stories, _ := cmd.Flags().GetInt("stories")
		sentences, _ := cmd.Flags().GetInt("sentences")
		seed, _ := cmd.Flags().GetInt64("seed")
		maxWords, _ := cmd.Flags().GetInt("max-words")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunPreview(cli.PreviewOptions{
			RepoPath:  repoPath,
			Start:     start,
			Stories:   stories,
			Sentences: sentences,
			Seed:      seed,
			SeedSet:   cmd.Flags().Changed("seed"),
			MaxWords:  maxWords,
			Debug:     debug,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().String("start", "", "Start word (rotates through the corpus' start words if omitted)")
	previewCmd.Flags().IntP("stories", "n", 3, "Number of stories to generate")
	previewCmd.Flags().Int("sentences", 1, "Sentences per story; later sentences start from rotating start words")
	previewCmd.Flags().Int64("seed", 0, "Seed for the pseudo-random die (random if omitted)")
	previewCmd.Flags().Int("max-words", 0, "Cap stories at this many words (0 keeps the default)")
}
