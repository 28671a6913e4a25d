// Package cli implements the campusnav command-line interface: a console front end
// that loads the campus graph and prints locations, shortest routes and ranked
// route options. Logs go to stderr through zerolog; results go to stdout.
package cli

import (
	"context"

	"campus-navigator/internal/config"
	"campus-navigator/internal/repository"
	"campus-navigator/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute runs the campusnav CLI with os.Args
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the campusnav command tree
func NewRootCmd() *cobra.Command {
	var (
		verbose   bool
		configDir string
	)

	root := &cobra.Command{
		Use:          "campusnav",
		Short:        "campusnav finds walking routes across the campus",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configDir, "config", "./configs", "directory containing app.yaml")

	load := func(cmd *cobra.Command) (*service.NavigationService, error) {
		return loadService(cmd.Context(), configDir)
	}

	root.AddCommand(newLocationsCmd(load))
	root.AddCommand(newRouteCmd(load))
	root.AddCommand(newOptionsCmd(load))

	return root
}

type serviceLoader func(cmd *cobra.Command) (*service.NavigationService, error)

// loadService reads configuration, seeds the graph and wraps it in a navigation service.
func loadService(ctx context.Context, configDir string) (*service.NavigationService, error) {
	logger := *zerolog.Ctx(ctx)

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}

	src, release, err := repository.OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer release()

	g, err := service.LoadGraph(ctx, src, logger)
	if err != nil {
		return nil, err
	}

	return service.NewNavigationService(g, cfg.WalkingSpeed, logger), nil
}
