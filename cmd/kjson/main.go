// Command kjson reformats a JSON document, pretty-printed or minimized.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	kjson "github.com/kjson/kjson"
)

// config holds the CLI flag values, mirroring the flag-names-as-struct
// style of MacroPower-x/log.Config.
type config struct {
	output    string
	pretty    bool
	minimized bool
	maxDepth  int
	logLevel  string
	logFormat string
}

func (c *config) registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&c.pretty, "pretty", true, "emit 4-space-indented JSON")
	flags.BoolVar(&c.minimized, "minimized", false, "emit JSON with no insignificant whitespace")
	flags.IntVar(&c.maxDepth, "max-depth", 0, "override the parser's recursion limit (0 keeps the default)")
	flags.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&c.logFormat, "log-format", "text", "log format: text, json")
}

func main() {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:           "kjson [flags] <file|->",
		Short:         "Parse and reformat a JSON document",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args[0], os.Stdout)
		},
	}
	cfg.registerFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}
	if cfg.logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func run(cfg *config, path string, stdout io.Writer) error {
	log := newLogger(cfg)
	start := time.Now()

	if cfg.maxDepth > 0 {
		kjson.SetRecursionLimit(cfg.maxDepth)
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = kjson.ReadFile(path)
	}
	if err != nil {
		log.Error("read input failed", "path", path, "error", err)
		return err
	}

	val, err := kjson.Parse(data)
	if err != nil {
		var parseErr *kjson.ParseError
		if errors.As(err, &parseErr) {
			log.Error("parse failed", "path", path, "line", parseErr.Line, "column", parseErr.Col)
		}
		return err
	}

	format := kjson.Pretty
	if cfg.minimized {
		format = kjson.Minimized
	}
	out := kjson.Serialize(val, format)
	out = append(out, '\n')

	if cfg.output == "" || cfg.output == "-" {
		if _, err := stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %w", kjson.ErrFileAccess, err)
		}
	} else if err := kjson.WriteFile(val, cfg.output, format); err != nil {
		return err
	}

	log.Info("reformatted document",
		"input_bytes", len(data),
		"output_bytes", len(out),
		"format", formatName(format),
		"elapsed", time.Since(start),
	)
	return nil
}

func formatName(f kjson.Format) string {
	if f == kjson.Pretty {
		return "pretty"
	}
	return "minimized"
}
