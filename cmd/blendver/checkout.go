package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkoutCmd represents the checkout command
var checkoutCmd = &cobra.Command{
	Use:   "checkout <document.blend> <ref>",
	Short: "Restore a document and its dependencies to a snapshot",
	Long: `Force-restore all tracked paths in the document's directory tree to
their state at the given commit reference.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := openHistory(args[0])
		if err != nil {
			fatal("Failed to open document", err)
		}

		if err := h.Checkout(args[1]); err != nil {
			fatal("Failed to checkout", err)
		}

		fmt.Println("Restored", h.Document().Name(), "to", args[1])
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}
