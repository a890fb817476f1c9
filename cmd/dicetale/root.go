package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dicetale",
	Short: "Dicetale turns a tiny corpus into a dice-driven story game",
	Long: `Dicetale reads a corpus of example sentences, counts which word follows
which, and maps each word's successors onto the faces of a six-sided die.
Roll the die, look up your word, and the table tells you the next one.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the corpus repository")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// repoPathFromFlags resolves the corpus directory: --dir wins, then the first
// positional argument, then the current directory.
func repoPathFromFlags(cmd *cobra.Command, args []string) string {
	repoPath, _ := cmd.Flags().GetString("dir")
	if !cmd.Flags().Changed("dir") && len(args) > 0 {
		repoPath = args[0]
	}
	return repoPath
}
