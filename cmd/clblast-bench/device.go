package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxnlabs/clblast/internal/bench"
	"github.com/fxnlabs/clblast/internal/config"
	"github.com/fxnlabs/clblast/internal/metrics"
	"github.com/fxnlabs/clblast/internal/opencl"
	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// session is an opened device with a library bound to it.
type session struct {
	rt      *opencl.Runtime
	lib     *clblast.Library
	backend bench.Backend
}

func openSession(cfg *config.Config, log *zap.Logger) (*session, error) {
	platforms, err := opencl.EnumeratePlatforms()
	if err != nil {
		return nil, err
	}
	pi, di, err := opencl.Select(platforms, cfg.Device.Platform, cfg.Device.Index)
	if err != nil {
		return nil, err
	}
	name := platforms[pi].Devices[di].Name

	rt, err := opencl.Open(pi, di)
	if err != nil {
		return nil, err
	}
	lib, err := clblast.New(clblast.WithLogger(log.Named("clblast")), clblast.WithObserver(metrics.Observer{}))
	if err != nil {
		rt.Close()
		return nil, err
	}
	log.Info("OpenCL device opened",
		zap.String("platform", platforms[pi].Name),
		zap.String("device", name),
		zap.Int("platform_index", pi),
		zap.Int("device_index", di))
	return &session{rt: rt, lib: lib, backend: bench.OpenCL(rt, name)}, nil
}

func (s *session) Close() {
	s.rt.Close()
}

func devicesCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "List OpenCL platforms and devices",
		Action: func(c *cli.Context) error {
			platforms, err := opencl.EnumeratePlatforms()
			if err != nil {
				return err
			}
			sp, sd, err := opencl.Select(platforms, e.cfg.Device.Platform, e.cfg.Device.Index)
			if err != nil {
				e.log.Warn("no device matches the configuration", zap.Error(err))
				sp, sd = -1, -1
			}
			return printDevices(c.App.Writer, platforms, sp, sd)
		},
	}
}

func printDevices(out io.Writer, platforms []opencl.PlatformInfo, selPlatform, selDevice int) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tPLATFORM\tDEVICE\tNAME\tTYPE\tCOMPUTE UNITS\tMEMORY (MiB)\tFP64")
	for pi, p := range platforms {
		for di, d := range p.Devices {
			mark := ""
			if pi == selPlatform && di == selDevice {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%d\t%d\t%t\n",
				mark, pi, di, d.Name, d.Type, d.MaxComputeUnits, d.GlobalMemBytes>>20, d.DoublePrecision)
		}
	}
	return w.Flush()
}

func clearCacheCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "clear-cache",
		Usage: "Drop CLBlast's compiled kernel cache",
		Action: func(c *cli.Context) error {
			lib, err := clblast.New(clblast.WithLogger(e.log.Named("clblast")), clblast.WithObserver(metrics.Observer{}))
			if err != nil {
				return err
			}
			if err := lib.ClearCache(); err != nil {
				return err
			}
			e.log.Info("kernel cache cleared")
			return nil
		},
	}
}

func fillCacheCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "fill-cache",
		Usage: "Compile and cache every CLBlast kernel for the selected device",
		Action: func(c *cli.Context) error {
			s, err := openSession(e.cfg, e.log)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.lib.FillCache(s.rt); err != nil {
				return err
			}
			e.log.Info("kernel cache filled", zap.String("device", s.backend.Name()))
			return nil
		},
	}
}
