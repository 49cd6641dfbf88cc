package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pathwaylabs/pathway"
)

var cpCmd = &cobra.Command{
	Use:   "cp SRC DST",
	Short: "Copy a file",
	Long:  `Copy a single file, preserving its permission bits. When DST is an existing directory the file is copied into it under its original name.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCp,
}

func runCp(_ *cobra.Command, args []string) error {
	src := pathway.New(args[0])
	dst := pathway.New(args[1])

	isDir, err := dst.IsDir()
	if err != nil {
		return err
	}
	if isDir {
		dst = dst.Join(src.Base())
	}

	if err := src.CopyTo(dst); err != nil {
		return err
	}
	slog.Debug("copied", "src", src.String(), "dst", dst.String())
	return nil
}
