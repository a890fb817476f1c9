package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dicetale"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dicetale",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dicetale version %s\n", strings.TrimSpace(dicetale.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
