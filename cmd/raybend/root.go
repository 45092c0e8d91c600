package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "raybend",
	Short: "Ray tracing through media with varying index of refraction",
	Long: `Raybend propagates light rays through three-dimensional media whose
index of refraction varies in space, bending each step with a vector
form of Snell's law.

It provides:
- trace: integrate a ray through the media of a JSON scenario file
- bend:  compute atmospheric refraction bending for a sightline from a
  sounding table (or the built-in standard atmosphere)`,
}

var logger *slog.Logger

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		level := slog.LevelInfo
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	})
}

// envOrFlag resolves a string setting: an explicitly set flag wins,
// then the environment variable, then the flag's default.
func envOrFlag(cmd *cobra.Command, flag, env string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}
