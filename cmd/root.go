package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/axpost/internal/logging"
	"github.com/mj1618/axpost/internal/output"
	"github.com/mj1618/axpost/internal/platform"
	"github.com/mj1618/axpost/internal/version"
	"github.com/spf13/cobra"
)

// logger is replaced in PersistentPreRunE once the log flags are parsed.
var logger = logging.Discard()

var rootCmd = &cobra.Command{
	Use:   "axpost",
	Short: "Post keyboard events to applications via the accessibility API",
	Long: `Post a single synthetic key-down or key-up event to a specific application
through the macOS accessibility subsystem (AXUIElementPostKeyboardEvent).

The event is addressed to an accessibility element rather than the global
event stream, so it reaches the target even when it is not frontmost.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		if err := output.Configure(format, pretty); err != nil {
			return err
		}

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		logFormat, _ := rootCmd.PersistentFlags().GetString("log-format")
		l, err := logging.New(logging.Options{Level: level, Format: logFormat})
		if err != nil {
			return err
		}
		logger = l
		return nil
	}
}
