package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var commitMsg string

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:   "commit <document.blend>",
	Short: "Snapshot a document and its dependencies",
	Long: `Snapshot the document together with every referenced file that lives
inside the document's own directory tree. References that are absolute
or point outside that tree are skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := openHistory(args[0])
		if err != nil {
			fatal("Failed to open document", err)
		}

		if err := h.Commit(commitMsg); err != nil {
			fatal("Failed to commit", err)
		}

		fmt.Println("Committed", h.Document().Name())
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
	commitCmd.Flags().StringVarP(&commitMsg, "message", "m", "", "Commit message")
	commitCmd.MarkFlagRequired("message")
}
