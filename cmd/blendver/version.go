package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blendver",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blendver version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
