package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/beacon/pkg/cli/config"
	"github.com/m-mizutani/beacon/pkg/domain/types"
	"github.com/m-mizutani/beacon/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var logger *slog.Logger
	app := newCommand(&logger, nil)

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

// newCommand builds the root command. Logs go to logOut, or stdout when nil.
func newCommand(logger **slog.Logger, logOut io.Writer) *cli.Command {
	loggerCfg := config.Logger{Writer: logOut}

	return &cli.Command{
		Name:    types.ServiceName,
		Usage:   "Latest release metadata server for app auto-update checks",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			configured, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			*logger = configured

			slog.SetDefault(configured)
			ctx = logging.With(ctx, configured)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdLatest(),
		},
	}
}
