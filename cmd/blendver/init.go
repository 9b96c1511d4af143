package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initDescription string

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init <document.blend>",
	Short: "Initialize version history for a document",
	Long: `Initialize a version history for the given document. This creates the
repository handle next to the document; it fails if one already exists.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := openHistory(args[0])
		if err != nil {
			fatal("Failed to open document", err)
		}

		if err := h.Init(initDescription); err != nil {
			fatal("Failed to initialize history", err)
		}

		fmt.Println("Initialized history in", h.Document().RepoDir())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "Free-text description stored in the repository")
}
