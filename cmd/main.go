package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

var configFile string
var logLevel string

// settings holds the loaded config file, if any. Command flags take
// precedence over it.
var settings Config

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "unleft"
	app.Usage = "remove left recursion from context-free grammars"
	app.Version = info.Version

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Usage:       "TOML config file (default: " + defaultConfigFile + " if present)",
			TakesFile:   true,
			Destination: &configFile,
		},
		cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (panic, fatal, error, warn, info, debug, trace)",
			Destination: &logLevel,
		},
	}
	app.Before = setup

	app.Commands = []cli.Command{eliminateCommand, checkCommand, replCommand}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}

func setup(c *cli.Context) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	settings = cfg

	level, err := logrus.ParseLevel(firstNonEmpty(logLevel, cfg.LogLevel, logrus.WarnLevel.String()))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

func firstNonEmpty(s ...string) string {
	for _, x := range s {
		if x != "" {
			return x
		}
	}
	return ""
}
