package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pathwaylabs/pathway"
)

var scratchCmd = &cobra.Command{
	Use:   "scratch [-- COMMAND [args...]]",
	Short: "Run a command inside a fresh temporary directory",
	Long: `Allocate a registered temporary directory and print its location.
With a command, run it with its working directory set there; the
directory's location is also exported as PATHWAY_SCRATCH. The directory
is swept away when pathway exits unless --keep is set.`,
	Args: cobra.ArbitraryArgs,
	RunE: runScratch,
}

func init() {
	scratchCmd.Flags().Bool("keep", false, "leave the directory behind on exit")
}

func runScratch(cmd *cobra.Command, args []string) error {
	dir, err := pathway.NewTempDir(viper.GetString("temp.parent"), viper.GetString("temp.prefix"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)

	if keep, _ := cmd.Flags().GetBool("keep"); keep {
		dir.Release()
		slog.Debug("scratch directory released from sweep", "path", dir.String())
	}

	if len(args) == 0 {
		return nil
	}

	child := exec.Command(args[0], args[1:]...)
	child.Dir = dir.String()
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = append(os.Environ(), "PATHWAY_SCRATCH="+dir.String())

	return child.Run()
}
