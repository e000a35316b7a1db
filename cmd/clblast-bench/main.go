package main

import (
	"fmt"
	"os"

	"github.com/fxnlabs/clblast/internal/config"
	"github.com/fxnlabs/clblast/internal/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// env is what the Before hook resolves for every command.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	e := &env{}
	app := &cli.App{
		Name:  "clblast-bench",
		Usage: "Benchmark and inspect CLBlast on the local OpenCL devices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Load configuration from `FILE`; built-in defaults when unset",
				EnvVars: []string{"CLBLAST_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "verbosity",
				Usage: "Override logger.verbosity (debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			return e.load(c.String("config"), c.String("verbosity"))
		},
		Commands: []*cli.Command{
			devicesCommand(e),
			gemmCommand(e),
			clearCacheCommand(e),
			fillCacheCommand(e),
			initConfigCommand(),
			serveCommand(e),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if e.log != nil {
			e.log.Fatal("failed to run app", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func (e *env) load(path, verbosity string) error {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return err
		}
	}
	if verbosity != "" {
		cfg.Logger.Verbosity = verbosity
	}
	zapLogger, err := logger.New(cfg.Logger.Verbosity, logger.WithConsole())
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = zapLogger.Named("bench")
	return nil
}
