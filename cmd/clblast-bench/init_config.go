package main

import (
	"fmt"
	"os"

	"github.com/fxnlabs/clblast/fixtures"
	"github.com/urfave/cli/v2"
)

func initConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "init-config",
		Usage: "Write the default configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "config.yaml",
				Usage: "Write the template to `FILE`",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: func(c *cli.Context) error {
			return writeTemplate(c.String("output"), c.Bool("force"))
		},
	}
}

func writeTemplate(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists, pass --force to overwrite", path)
		}
		return err
	}
	if _, err := f.Write(fixtures.ConfigTemplate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
