package main

import (
	"os"

	"github.com/blendver/blendver/pkg/blendver"
	"github.com/spf13/cobra"
)

var (
	logFormat string
	logRaw    bool
)

// logCmd passes the backend log straight through, unlike list which
// reformats it.
var logCmd = &cobra.Command{
	Use:   "log <document.blend>",
	Short: "Show the raw backend log for a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := openHistory(args[0])
		if err != nil {
			fatal("Failed to open document", err)
		}

		opts := blendver.LogOptions{Format: logFormat, Raw: logRaw}
		if err := h.Log(os.Stdout, opts); err != nil {
			fatal("Failed to show log", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVar(&logFormat, "format", "", "Log format, forwarded verbatim to the backend")
	logCmd.Flags().BoolVar(&logRaw, "raw", false, "Show the raw diff format")
}
