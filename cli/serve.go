package cli

import (
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/moh-adedamola/portfolio/api"
	"github.com/moh-adedamola/portfolio/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port            int
	Live            bool
	ShutdownTimeout time.Duration
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start a local web server that renders the same pages as "export".

With live updates on, opening and closing a project patches the overlay in
place over server-sent events instead of loading a new page.`,
		Example: `  # Serve on PORT or 8080
  portfolio serve

  # Serve on a custom port without live updates
  portfolio serve --port 3000 --live=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: PORT or 8080)")
	cmd.Flags().BoolVar(&opts.Live, "live", true, "Patch the project overlay in place (default: LIVE_UPDATES or true)")
	cmd.Flags().DurationVar(&opts.ShutdownTimeout, "shutdown-timeout", 30*time.Second, "Grace period for in-flight requests")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	c := envFrom(cmd)

	// CLI flags override the environment
	if opts.Port != 0 {
		c["PORT"] = strconv.Itoa(opts.Port)
	}
	if cmd.Flags().Changed("live") {
		c["LIVE_UPDATES"] = strconv.FormatBool(opts.Live)
	}

	server, err := api.NewServer(siteFrom(cmd), c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("port", config.GetString(c, "PORT", "8080")).
		Bool("live", config.GetBool(c, "LIVE_UPDATES", true)).
		Msg("Starting preview server")

	return server.Serve(ctx, opts.ShutdownTimeout)
}
