// Package main provides the erap command-line tool for normalizing rental
// assistance program listings.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"erap/internal/config"
	"erap/internal/counties"
	"erap/internal/logger"
	"erap/internal/normalizer"
	"erap/internal/report"
	"erap/internal/tsv"
	"erap/internal/validator"
	"erap/pkg/metadata"
)

const missingArgMessage = "No argument was provided! This script requires a TSV file as its sole argument."

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("❌ %v\n", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("erap", flag.ContinueOnError)
	fs.SetOutput(stdout)

	configFile := fs.String("config", "", "Path to YAML configuration file (default: "+config.DefaultPath+" if present)")
	logLevel := fs.String("log-level", "", "Override logging.level (debug, info, warn, error)")

	fs.Usage = func() {
		fmt.Fprintln(stdout, "Usage: erap [OPTIONS] <listing.tsv>")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, missingArgMessage)
		fs.Usage()

		return nil
	}

	inputPath := fs.Arg(0)

	cfg, err := loadConfig(*configFile, *logLevel)
	if err != nil {
		return err
	}

	lg := logger.New(cfg.Logging.Level, cfg.Logging.Format, stderr)
	lg.Debug("configuration loaded", "config", cfg.String())

	table, err := counties.Load(cfg.Counties.Path)
	if err != nil {
		return err
	}

	lg.Info("county table loaded", "path", cfg.Counties.Path, "localities", table.Len())

	content, err := tsv.ReadFile(inputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "📂 Reading: %s (%d bytes)\n", inputPath, len(content))

	parser := tsv.NewParser(cfg.Input.HeaderLine)

	records, err := parser.Parse(content)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", inputPath, err)
	}

	header := validator.CheckHeader(parser.Headers())
	for _, warn := range header.Warnings {
		lg.Warn("header check", "warning", warn)
	}

	validator.Rekey(records, header.Aliases)

	transformer := normalizer.NewTransformer(
		table,
		normalizer.NewStatusValidator(cfg.Rules.AcceptedStatuses...),
		cfg.NormalizerRules(),
	)
	res := normalizer.NewProcessor(transformer, lg).Process(records)

	errorsText := report.Text(res.Diagnostics)

	fmt.Fprintln(stdout, errorsText)
	fmt.Fprintln(stdout, report.Summary(res))
	fmt.Fprintln(stdout)

	writer := cfg.Writer()

	programsPath, data, err := writer.WritePrograms(res.Programs)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "✅ Saved to: %s\n", programsPath)

	errorsPath, written, err := writer.WriteErrors(errorsText)
	if err != nil {
		return err
	}

	if written {
		fmt.Fprintf(stdout, "⚠️  Diagnostics saved to: %s\n", errorsPath)
	}

	stamp := metadata.NewStamp(inputPath, []byte(content), len(records))
	stamp.SetOutput(data)
	lg.Info("run complete", stamp.LogArgs()...)

	return nil
}

// loadConfig resolves the configuration: an explicit file, else the default
// location when it exists, else built-in defaults.
func loadConfig(path, level string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err == nil {
			path = config.DefaultPath
		}
	}

	cfg := config.Default()

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if level != "" {
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
