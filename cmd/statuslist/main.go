// Package main provides the statuslist command line tool for working with
// compressed token status list documents.
package main

import (
	"os"

	"github.com/shaileshp0110/token-status-list/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "statuslist")

var verbosityFlag = &cli.StringFlag{
	Name:  "verbosity",
	Usage: "logging verbosity (trace, debug, info, warn, error, fatal, panic)",
	Value: "info",
}

func main() {
	app := cli.App{}
	app.Name = "statuslist"
	app.Usage = "utilities for compressed token status list documents"
	app.Version = version.GetVersion()
	app.Flags = []cli.Flag{verbosityFlag}
	app.Commands = []*cli.Command{
		encodeCmd,
		decodeCmd,
		getCmd,
		inspectCmd,
	}
	app.Before = func(ctx *cli.Context) error {
		level, err := logrus.ParseLevel(ctx.String(verbosityFlag.Name))
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		logrus.SetFormatter(formatter)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
