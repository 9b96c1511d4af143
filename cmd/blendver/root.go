package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blendver/blendver/pkg/blendver"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	gitExec     string
	depsTool    string
	blenderExec string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blendver",
	Short: "Per-document version history backed by Git",
	Long: `Blendver snapshots a .blend document together with the external files
it references into a sibling Git repository, and can list, inspect,
revert and restore those snapshots.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openHistory builds a History from the document argument plus the
// persistent executable overrides.
func openHistory(path string) (*blendver.History, error) {
	return blendver.Open(path,
		blendver.WithLogger(slog.Default()),
		blendver.WithGitExec(gitExec),
		blendver.WithDepsTool(depsTool),
		blendver.WithBlenderExec(blenderExec),
	)
}

// helpCmd lists the valid commands, optionally filtered by a glob
// pattern ("un*", "c*"). An unknown pattern simply matches nothing.
var helpCmd = &cobra.Command{
	Use:   "help [pattern]",
	Short: "List commands, optionally filtered by a glob pattern",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) > 0 {
			pattern = args[0]
		}
		for _, c := range rootCmd.Commands() {
			if c.Hidden {
				continue
			}
			if pattern != "" {
				if ok, err := doublestar.Match(pattern, c.Name()); err != nil || !ok {
					continue
				}
			}
			fmt.Printf("%-10s %s\n", c.Name(), c.Short)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.PersistentFlags().StringVar(&gitExec, "git", "", "Path to the git executable")
	rootCmd.PersistentFlags().StringVar(&depsTool, "deps-tool", "", "Path to the dependency scanner")
	rootCmd.PersistentFlags().StringVar(&blenderExec, "blender", "", "Executable override forwarded to the dependency scanner")
}
