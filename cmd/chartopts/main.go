// Command chartopts validates and normalizes chart option files.
//
// Commands:
//   - normalize: decode option files and write their canonical form
//   - check: report invalid values and unknown keys with suggestions
//   - dump: print the decoded object graph
//   - types: list the fields an entity accepts
//   - register: print the registration script of a custom series type
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"chartopts/internal/config"
	"chartopts/internal/logger"
)

const configKey = "config"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "chartopts"
	app.Usage = "Validate and normalize chart configuration options"
	app.Description = `chartopts decodes JSON or YAML chart options into typed entities,
reports invalid values and unknown keys, and writes the canonical camelCase form.`

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: console or json",
		},
		&cli.IntFlag{
			Name:  "parallelism",
			Usage: "Files decoded concurrently (0 uses the config value)",
		},
	}

	app.Commands = []*cli.Command{
		normalizeCommand(),
		checkCommand(),
		dumpCommand(),
		typesCommand(),
		registerCommand(),
	}

	app.Metadata = map[string]any{}
	app.Before = setup
	app.After = func(*cli.Context) error {
		_ = logger.Sync()
		return nil
	}

	return app
}

// setup loads the config, lets global flags override it and initializes
// logging.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}

	if c.IsSet("parallelism") && c.Int("parallelism") > 0 {
		cfg.Parallelism = c.Int("parallelism")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Initialize(logger.Level(cfg.LogLevel), logger.Format(cfg.LogFormat)); err != nil {
		return err
	}

	c.App.Metadata[configKey] = cfg
	logger.For(logger.ComponentConfig).Debugw("Config loaded",
		"path", c.String("config"),
		"strict", cfg.Strict,
		"parallelism", cfg.Parallelism)

	return nil
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}

	return config.Default()
}
