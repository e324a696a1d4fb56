// Package cli provides the command-line interface for the portfolio site.
package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/moh-adedamola/portfolio/config"
	"github.com/moh-adedamola/portfolio/content"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// siteKey is used to store the loaded content in the command context.
type siteKey struct{}

// envKey is used to store the config snapshot in the command context.
type envKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var contentFile string

	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio site generator and preview server",
		Long: `portfolio renders a one-page developer portfolio from a YAML catalog.

The catalog is compiled into the binary; --content swaps in a file on disk.
Use "export" to build the static site and "serve" to preview it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			c := config.New()
			SetupLogging(c, cmd.ErrOrStderr())

			site, err := content.Load(contentFile)
			if err != nil {
				return err
			}
			log.Debug().Str("content", contentFile).Int("projects", site.ProjectRepo().Count()).Msg("Loaded catalog")

			ctx := context.WithValue(cmd.Context(), siteKey{}, site)
			ctx = context.WithValue(ctx, envKey{}, c)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "YAML catalog to use instead of the embedded one")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewValidateCommand())

	return rootCmd
}

// Execute runs the root command with the given arguments.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// SetupLogging configures the global zerolog logger from LOG_LEVEL and
// LOG_FORMAT. The default is coloured console output at info level.
func SetupLogging(c map[string]string, out io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(config.GetString(c, "LOG_FORMAT", "console"), "json") {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

func siteFrom(cmd *cobra.Command) content.Content {
	if site, ok := cmd.Context().Value(siteKey{}).(content.Content); ok {
		return site
	}
	return content.Content{}
}

func envFrom(cmd *cobra.Command) map[string]string {
	if c, ok := cmd.Context().Value(envKey{}).(map[string]string); ok {
		return c
	}
	return config.New()
}
