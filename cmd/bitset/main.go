// Command bitset inspects and combines bit-set literals such as 1001101 or
// [7]{1001101}.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "bitset")

var appFlags = []cli.Flag{
	VerbosityFlag,
	LogFormat,
	DefaultOpFlag,
	ConfigFileFlag,
}

func newApp(out io.Writer) *cli.App {
	flags := wrapFlags(appFlags)

	app := &cli.App{}
	app.Name = "bitset"
	app.Usage = "inspect and combine packed bit sets"
	app.Writer = out
	app.Flags = flags
	app.Commands = commands
	app.Before = func(ctx *cli.Context) error {
		// Load any flags from file, if specified.
		if ctx.IsSet(ConfigFileFlag.Name) {
			if err := altsrc.InitInputSourceWithContext(
				flags,
				altsrc.NewYamlSourceFromFlagFunc(ConfigFileFlag.Name))(ctx); err != nil {
				return err
			}
		}
		return configureLogging(ctx)
	}
	return app
}

func configureLogging(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	format := ctx.String(LogFormat.Name)
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		logrus.SetFormatter(formatter)
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %s", format)
	}
	return nil
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.WithError(err).Fatal("Command failed")
	}
}
