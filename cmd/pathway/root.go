package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pathwaylabs/pathway"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "pathway",
	Short:         "Inspect and manage filesystem paths",
	Long:          `pathway lists directory trees, copies files, and runs commands inside temporary directories that are swept away on exit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging(verbose)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(cpCmd)
	rootCmd.AddCommand(scratchCmd)
}

// initConfig wires viper: defaults, an optional config file under
// ~/.config/pathway, and PATHWAY_* environment variables.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "pathway"))
	}

	viper.SetEnvPrefix("PATHWAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("hidden", false)
	viper.SetDefault("exclude", []string{})
	viper.SetDefault("temp.parent", "")
	viper.SetDefault("temp.prefix", pathway.DefaultTempPrefix)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("could not read config file", "err", err)
		}
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}
