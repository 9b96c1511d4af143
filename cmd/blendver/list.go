package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <document.blend>",
	Short: "List all snapshots of a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := openHistory(args[0])
		if err != nil {
			fatal("Failed to open document", err)
		}

		records, err := h.List()
		if err != nil {
			fatal("Failed to list snapshots", err)
		}

		if len(records) == 0 {
			fmt.Println("no commits yet")
			return
		}

		for _, r := range records {
			fmt.Printf("%s  %s  %s\n", r.Hash, r.Time.Format("2006-01-02 15:04"), r.Subject)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
