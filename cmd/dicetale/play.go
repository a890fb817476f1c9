package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dicetale/internal/cli"
	"github.com/spf13/cobra"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a story with a physical die",
	Long: `Starts an interactive session: Dicetale shows the table row for the
current word, you roll a real die and type the face, and the story grows
one word at a time until a roll lands on END SENTENCE.`,
	Run: func(cmd *cobra.Command, args []string) {
		repoPath := repoPathFromFlags(cmd, args)
		start, _ := cmd.Flags().GetString("start")
		maxWords, _ := cmd.Flags().GetInt("max-words")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunPlay(cli.PlayOptions{
			RepoPath: repoPath,
			Start:    start,
			MaxWords: maxWords,
			Debug:    debug,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().String("start", "", "Start word (defaults to the corpus' first start word)")
	playCmd.Flags().Int("max-words", 0, "Cap stories at this many words (0 keeps the default)")

	// Make 'play' the default if no command is provided
	rootCmd.Run = playCmd.Run
}
