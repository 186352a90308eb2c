package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"chartopts/internal/config"
	"chartopts/internal/jsliteral"
	"chartopts/internal/logger"
	"chartopts/option"
	"chartopts/series"
)

var errCheckFailed = errors.New("check failed")

func entityFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "entity",
		Aliases: []string{"e"},
		Value:   "legend",
		Usage:   "Entity the files describe (chartopts types --list shows them all)",
	}
}

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Decode option files and write their canonical form",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			entityFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: json, yaml or js (default from config)",
			},
			&cli.StringFlag{
				Name:    "out-dir",
				Aliases: []string{"o"},
				Usage:   "Write one file per input here instead of stdout",
			},
		},
		Action: runNormalize,
	}
}

func runNormalize(c *cli.Context) error {
	cfg := configFrom(c)

	format := cfg.OutputFormat
	if c.IsSet("format") {
		format = strings.ToLower(c.String("format"))
	}

	paths, entities, err := buildFiles(c, cfg)
	if err != nil {
		return err
	}

	outDir := c.String("out-dir")
	for i, e := range entities {
		data, err := render(e, format, cfg.IndentString())
		if err != nil {
			return fmt.Errorf("%s: %w", paths[i], err)
		}

		if outDir == "" {
			if _, err := fmt.Fprintln(c.App.Writer, string(data)); err != nil {
				return err
			}

			continue
		}

		target := filepath.Join(outDir, outputName(paths[i], format))
		if err := os.WriteFile(target, append(data, '\n'), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		logger.For(logger.ComponentCLI).Infow("Normalized", "input", paths[i], "output", target)
	}

	return nil
}

// render writes the trimmed mapping of e. The js format keeps callbacks
// as unquoted JavaScript.
func render(e option.Entity, format, indent string) ([]byte, error) {
	switch format {
	case config.OutputJSON:
		return json.MarshalIndent(e.ToMapping(), "", indent)
	case config.OutputYAML:
		data, err := option.ToYAML(e)
		return []byte(strings.TrimRight(string(data), "\n")), err
	case config.OutputJS:
		return []byte(jsliteral.Marshal(option.LiteralMapping(e))), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func outputName(path, format string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base + "." + format
}

// buildFiles reads every argument and decodes the files concurrently.
func buildFiles(c *cli.Context, cfg *config.Config) ([]string, []option.Entity, error) {
	kind, err := lookupEntity(c.String("entity"))
	if err != nil {
		return nil, nil, err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		return nil, nil, errors.New("provide at least one option file")
	}

	raws := make([]map[string]any, len(paths))
	for i, path := range paths {
		if raws[i], err = option.ReadMapping(path); err != nil {
			return nil, nil, err
		}
	}

	logger.For(logger.ComponentBatch).Debugw("Decoding files",
		"entity", kind.Name,
		"files", len(paths),
		"parallelism", cfg.Parallelism)

	entities, err := option.BuildAll(c.Context, kind.build, raws, cfg.Parallelism)
	if err != nil {
		return nil, nil, err
	}

	return paths, entities, nil
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report invalid values and unknown keys",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			entityFlag(),
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Treat unknown keys as errors",
			},
		},
		Action: runCheck,
	}
}

func runCheck(c *cli.Context) error {
	cfg := configFrom(c)

	kind, err := lookupEntity(c.String("entity"))
	if err != nil {
		return err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("provide at least one option file")
	}

	strict := cfg.Strict || c.Bool("strict")
	failed := false

	for _, path := range paths {
		ok, err := checkFile(c.App.Writer, kind, path, strict)
		if err != nil {
			return err
		}

		failed = failed || !ok
	}

	if failed {
		return errCheckFailed
	}

	return nil
}

func checkFile(w io.Writer, kind entityKind, path string, strict bool) (bool, error) {
	raw, err := option.ReadMapping(path)
	if err != nil {
		return false, err
	}

	e, err := kind.empty(raw)
	if err != nil {
		_, werr := fmt.Fprintf(w, "%s: %v\n", path, err)
		return false, werr
	}

	diags := option.Inspect(e, raw)
	if strict {
		diags.Strict()
	}

	all := diags.All()
	if len(all) == 0 {
		_, err := fmt.Fprintf(w, "%s: ok\n", path)
		return true, err
	}

	for _, d := range all {
		if _, err := fmt.Fprintf(w, "%s: %s\n", path, d.String()); err != nil {
			return false, err
		}
	}

	return !diags.HasErrors(), nil
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Print the decoded object graph",
		ArgsUsage: "<file>...",
		Flags:     []cli.Flag{entityFlag()},
		Action: func(c *cli.Context) error {
			paths, entities, err := buildFiles(c, configFrom(c))
			if err != nil {
				return err
			}

			dumper := spew.ConfigState{
				Indent:                  "  ",
				SortKeys:                true,
				DisablePointerAddresses: true,
				DisableCapacities:       true,
			}

			for i, e := range entities {
				fmt.Fprintf(c.App.Writer, "# %s\n", paths[i])
				dumper.Fdump(c.App.Writer, option.Snap(e))
			}

			return nil
		},
	}
}

func typesCommand() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List the fields an entity accepts",
		Flags: []cli.Flag{
			entityFlag(),
			&cli.StringFlag{
				Name:  "type",
				Usage: "Series type, for --entity series",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List the entity names instead",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("list") {
				return writeEntities(c.App.Writer)
			}

			kind, err := lookupEntity(c.String("entity"))
			if err != nil {
				return err
			}

			raw := map[string]any{}
			if t := c.String("type"); t != "" {
				raw["type"] = t
			}

			e, err := kind.empty(raw)
			if err != nil {
				return err
			}

			return writeFields(c.App.Writer, e.Registry())
		},
	}
}

func writeEntities(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, name := range entityNames() {
		fmt.Fprintf(tw, "%s\t%s\n", name, entityKinds[name].Usage)
	}

	return tw.Flush()
}

func writeFields(w io.Writer, reg *option.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s (%d fields)\n", reg.Name(), reg.Len())
	fmt.Fprintln(tw, "KEY\tNAME\tKIND\tACCEPTS\tDEFAULT\tDECLARED BY")

	for _, f := range reg.Fields() {
		def := ""
		if f.HasDefault() {
			def = fmt.Sprint(f.DefaultValue())
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", f.Key, f.Name, f.Type.Kind, f.Type, def, f.Origin())
	}

	return tw.Flush()
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:      "register",
		Usage:     "Print the registration script of custom series types",
		ArgsUsage: "<file>...",
		Action: func(c *cli.Context) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return errors.New("provide at least one custom series file")
			}

			for _, path := range paths {
				raw, err := option.ReadMapping(path)
				if err != nil {
					return err
				}

				cs, err := series.CustomFromMapping(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				script, err := cs.RegistrationScript()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				fmt.Fprintln(c.App.Writer, script)
			}

			return nil
		},
	}
}
