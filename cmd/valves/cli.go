package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/valveflow/config"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// parseArgs turns command-line arguments into a validated Config. Flags win over
// the config file and environment. The boolean reports a clean exit (-h).
func parseArgs(args []string, output io.Writer) (config.Config, bool, error) {
	fs := flag.NewFlagSet("valves", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
valves - maximum pressure release for one and two agents.

Usage:
  valves [options] [INPUT]

Arguments:
  INPUT
    Valve network, one "Valve XX has flow rate=N; tunnels lead to valves ..." per line.

Options:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to a YAML config file.")
	envFile := fs.String("env-file", ".env", "Dotenv file with VALVES_* variables (ignored if missing).")
	input := fs.String("input", "", "Path to the valve network.")
	start := fs.String("start", "", "Start valve name.")
	workers := fs.Int("workers", 0, "Parallel workers for the partition search.")
	strategy := fs.String("strategy", "", "Two-agent strategy: 'partition' or 'joint'.")
	distances := fs.String("distances", "", "All-pairs method: 'bfs' or 'floyd-warshall'.")
	logLevel := fs.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error' or 'disable'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, true, nil
		}
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "start":
			cfg.Start = *start
		case "workers":
			cfg.Workers = *workers
		case "strategy":
			cfg.Strategy = *strategy
		case "distances":
			cfg.Distances = *distances
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if cfg.Input == "" {
		fs.Usage()
		return config.Config{}, false, &ExitError{Code: 2, Message: "no input given"}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
