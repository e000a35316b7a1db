package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/common-nighthawk/go-figure"
	"github.com/fxnlabs/clblast/internal/bench"
	"github.com/urfave/cli/v2"
)

func gemmCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "gemm",
		Usage: "Run one pass of the SGEMM benchmark and print a table",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "Override bench.repeat",
			},
			&cli.BoolFlag{
				Name:  "no-verify",
				Usage: "Skip the host reference check",
			},
		},
		Action: func(c *cli.Context) error {
			if n := c.Int("repeat"); n > 0 {
				e.cfg.Bench.Repeat = n
			}
			if c.Bool("no-verify") {
				e.cfg.Bench.Verify = false
			}

			s, err := openSession(e.cfg, e.log)
			if err != nil {
				return err
			}
			defer s.Close()

			figure.NewFigure("CLBlast", "", true).Print()
			fmt.Fprintf(c.App.Writer, "\nDevice: %s\n\n", s.backend.Name())

			runner := bench.NewRunner(s.lib, s.backend, e.cfg, e.log)
			results, runErr := runner.Run(c.Context)
			if err := printResults(c.App.Writer, results); err != nil {
				return err
			}
			return runErr
		},
	}
}

func printResults(out io.Writer, results []bench.Result) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "STREAMS\tSAMPLES\tRUNS\tMEAN\tGFLOPS\tVERIFIED\tMAX ERROR\t")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%.2f\t%t\t%.2e\t\n",
			r.Size.Streams, r.Size.Samples, r.Runs, r.Mean, r.GFLOPS, r.Verified, r.MaxError)
	}
	return w.Flush()
}
