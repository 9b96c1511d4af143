package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// uncommitCmd rolls the history pointer back one commit. It shows the
// removed commit's changes so the operator can confirm what was dropped.
var uncommitCmd = &cobra.Command{
	Use:   "uncommit <document.blend>",
	Short: "Remove the most recent snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := openHistory(args[0])
		if err != nil {
			fatal("Failed to open document", err)
		}

		hash, err := h.Uncommit(os.Stdout)
		if err != nil {
			fatal("Failed to uncommit", err)
		}

		fmt.Println("Removed commit", hash)
	},
}

func init() {
	rootCmd.AddCommand(uncommitCmd)
}
