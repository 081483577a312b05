package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/cellgrid/internal/logging"
)

// options holds the command line settings.
type options struct {
	configPath  string
	logLevel    string
	logFile     string
	watch       bool
	headless    int
	metricsAddr string
	showVersion bool
}

func parseFlags(args []string) (options, error) {
	return parseFlagsTo(args, os.Stderr)
}

func parseFlagsTo(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("cellgrid", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.watch, "watch", false, "Reload the configuration file when it changes")
	fs.IntVar(&opts.headless, "headless", 0, "Render N frames without a terminal and print the last one")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics at this address (e.g. :9090)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(output, "cellgrid - terminal cell buffer and diff demo\n\n")
		fmt.Fprintf(output, "Usage: cellgrid [options]\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nKeys: q/Esc/Ctrl-C quit, Space pause, Ctrl-L repaint\n")
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  cellgrid                          Run in the terminal\n")
		fmt.Fprintf(output, "  cellgrid -c cellgrid.toml -watch  Live-reload the theme\n")
		fmt.Fprintf(output, "  cellgrid -headless 10             Print the 10th frame\n")
		fmt.Fprintf(output, "  cellgrid -metrics-addr :9090      Expose frame metrics\n")
	}

	// -h and -help are handled by the flag package and return flag.ErrHelp.
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.logLevel != "" {
		if _, err := logging.ParseLevel(opts.logLevel); err != nil {
			return options{}, err
		}
	}
	if opts.headless < 0 {
		return options{}, fmt.Errorf("-headless must not be negative, got %d", opts.headless)
	}
	if opts.watch && opts.configPath == "" {
		return options{}, fmt.Errorf("-watch requires -config")
	}
	if opts.metricsAddr != "" && opts.headless > 0 {
		return options{}, fmt.Errorf("-metrics-addr cannot be used with -headless")
	}
	return opts, nil
}
