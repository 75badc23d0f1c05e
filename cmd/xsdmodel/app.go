package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/erraggy/xsdmodel"
	"github.com/erraggy/xsdmodel/converter"
	"github.com/erraggy/xsdmodel/internal/cliutil"
	"github.com/erraggy/xsdmodel/internal/config"
	"github.com/erraggy/xsdmodel/internal/mcpserver"
	"github.com/erraggy/xsdmodel/parser"
)

// app holds the output streams shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "xsdmodel",
		Usage:     "compile XML Schema documents into typed object models",
		Version:   xsdmodel.Version(),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log debug output to stderr",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML compile configuration",
				Sources: cli.EnvVars("XSDMODEL_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			a.generateCommand(),
			a.inspectCommand(),
			a.sampleCommand(),
			{
				Name:  "mcp",
				Usage: "serve the compile, inspect and sample tools over MCP stdio",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return mcpserver.Run(ctx)
				},
			},
			{
				Name:  "version",
				Usage: "print build information",
				Action: func(_ context.Context, _ *cli.Command) error {
					cliutil.Writef(a.stdout, "xsdmodel %s\n", xsdmodel.BuildInfo())
					return nil
				},
			},
		},
	}
}

// schemaArg returns the single schema path argument of cmd.
func schemaArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("%s command requires exactly one schema path", cmd.Name)
	}
	return cmd.Args().First(), nil
}

// loadConfig reads the --config file, or returns an empty configuration.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

// compilation is the result of the ingestion and conversion stages.
type compilation struct {
	parsed    *parser.ParseResult
	converted *converter.ConvertResult
}

// parse ingests the schema named on the command line.
func (a *app) parse(cmd *cli.Command, cfg *config.Config, logger parser.Logger) (*parser.ParseResult, error) {
	path, err := schemaArg(cmd)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.ParserOptions(), parser.WithFilePath(path), parser.WithLogger(logger))
	return parser.ParseWithOptions(opts...)
}

// compile ingests and converts the schema, reporting issues to stderr.
func (a *app) compile(cmd *cli.Command) (*compilation, error) {
	zl := newZapLogger(a.stderr, cmd.Bool("debug"))
	defer func() { _ = zl.Sync() }()
	logger := zapLogger{s: zl.Sugar()}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	parsed, err := a.parse(cmd, cfg, logger)
	if err != nil {
		return nil, err
	}
	converted, err := cfg.Convert(parsed.Graph, converter.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	verbose := cmd.Bool("debug")
	cliutil.WriteIssues(a.stderr, "Schema", parsed.Issues, verbose)
	cliutil.WriteIssues(a.stderr, "Conversion", converted.Issues, verbose)
	return &compilation{parsed: parsed, converted: converted}, nil
}
