package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pathwaylabs/pathway"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List directory entries",
	Long:  `List the entries of a directory, optionally walking subdirectories with a depth bound and glob exclusions. Without a path the current working directory is listed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().BoolP("dir", "d", false, "include directories themselves")
	lsCmd.Flags().BoolP("hidden", "a", false, "include hidden entries")
	lsCmd.Flags().BoolP("recursive", "r", false, "walk subdirectories")
	lsCmd.Flags().Int("max-depth", 0, "bound recursion depth, 0 means unbounded")
	lsCmd.Flags().StringArray("exclude", nil, "glob pattern to skip, repeatable")
	lsCmd.Flags().BoolP("long", "l", false, "show sizes and modification times")
}

func runLs(cmd *cobra.Command, args []string) error {
	root := pathway.New(args...)
	opts, err := lsOptions(cmd)
	if err != nil {
		return err
	}
	long, _ := cmd.Flags().GetBool("long")

	count := 0
	for entry, err := range root.List(opts) {
		if err != nil {
			return err
		}
		count++
		if !long {
			fmt.Fprintln(cmd.OutOrStdout(), entry)
			continue
		}
		info, err := entry.Lstat()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%10s  %s  %s\n",
			humanize.IBytes(uint64(info.Size())), info.ModTime().Format(time.DateTime), entry)
	}

	slog.Debug("listing complete", "root", root.String(), "entries", count)
	return nil
}

// lsOptions merges configured defaults with the flags actually set on
// the command line. Exclusion patterns accumulate from both sources.
func lsOptions(cmd *cobra.Command) (pathway.ListOptions, error) {
	opts := pathway.ListOptions{
		Hidden:  viper.GetBool("hidden"),
		Exclude: viper.GetStringSlice("exclude"),
	}

	flags := cmd.Flags()
	if flags.Changed("hidden") {
		opts.Hidden, _ = flags.GetBool("hidden")
	}
	opts.Dir, _ = flags.GetBool("dir")
	opts.Recursive, _ = flags.GetBool("recursive")
	opts.MaxDepth, _ = flags.GetInt("max-depth")

	extra, err := flags.GetStringArray("exclude")
	if err != nil {
		return opts, err
	}
	opts.Exclude = append(opts.Exclude, extra...)

	return opts, nil
}
