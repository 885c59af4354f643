package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"rnaplot/internal/config"
	"rnaplot/internal/trajectory"
	"rnaplot/internal/vienna"

	"github.com/charmbracelet/log"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// terminalWriter wraps an io.Writer and exposes an Fd method so the logger
// keeps TTY detection when stderr is teed to a log file.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

// options collects the command line.
type options struct {
	inputs     map[trajectory.Format]*string
	configPath string
	outDir     string
	dryRun     bool
	verbose    bool
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("rnaplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{inputs: map[trajectory.Format]*string{}}

	aliases := map[trajectory.Format]string{
		trajectory.Multistrand:   "i1",
		trajectory.DrTransformer: "i2",
		trajectory.Kinwalker:     "i3",
	}
	for _, f := range trajectory.Formats {
		p := new(string)
		o.inputs[f] = p
		usage := fmt.Sprintf("%s input file", f)
		fs.StringVar(p, "input-"+f.String(), "", usage)
		fs.StringVar(p, aliases[f], "", "alias of --input-"+f.String())
	}
	fs.StringVar(&o.configPath, "config", "", "path to rnaplot.json or .yaml (optional)")
	fs.StringVar(&o.outDir, "outdir", "", "write .vienna files here instead of next to the inputs")
	fs.BoolVar(&o.dryRun, "dry-run", false, "parse inputs and report, without writing outputs")
	fs.BoolVar(&o.verbose, "verbose", false, "enable verbose (debug) logging")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [-i1 FILE] [-i2 FILE] [-i3 FILE] [options]\n\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

// newLogger builds the process logger on stderr, teed to logFile when set.
// The returned func closes the log file.
func newLogger(stderr io.Writer, logFile, level string, verbose bool) (*log.Logger, func()) {
	var out io.Writer = stderr
	closeFn := func() {}
	var openErr error
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = io.MultiWriter(stderr, f)
			closeFn = func() { _ = f.Close() }
		} else {
			openErr = err
		}
	}
	sink := out
	if f, ok := stderr.(*os.File); ok {
		sink = &terminalWriter{w: out, fd: f.Fd()}
	}
	logger := log.NewWithOptions(sink, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "rnaplot",
	})

	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(level) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "info", "":
			logger.SetLevel(log.InfoLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
			logger.Warn("unknown log_level in config, defaulting to info", "provided", level)
		}
	}
	if openErr != nil {
		logger.Warn("log_file specified but could not be opened; logging to stderr only", "path", logFile, "err", openErr)
	}
	return logger, closeFn
}

// run is main without the exit. Every requested conversion is attempted;
// the exit code is 1 if any of them failed.
func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if o.version {
		fmt.Fprintln(stdout, "rnaplot", version)
		return 0
	}

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "cannot load config %q: %v\n", o.configPath, err)
		return 2
	}
	// flags override config when provided
	fromConfig := map[trajectory.Format]string{
		trajectory.Multistrand:   cfg.InputMultistrand,
		trajectory.DrTransformer: cfg.InputDrTransformer,
		trajectory.Kinwalker:     cfg.InputKinwalker,
	}
	for f, p := range o.inputs {
		if *p == "" {
			*p = fromConfig[f]
		}
	}
	if o.outDir != "" {
		cfg.OutputDir = o.outDir
	}

	logger, closeLog := newLogger(stderr, cfg.LogFile, cfg.LogLevel, o.verbose)
	defer closeLog()
	logger.Debug("loaded config", "output_dir", cfg.OutputDir, "log_file", cfg.LogFile, "log_level", cfg.LogLevel, "dry_run", o.dryRun)

	if cfg.OutputDir != "" && !o.dryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			logger.Error("cannot create output directory", "path", cfg.OutputDir, "err", err)
			return 1
		}
	}

	failed := 0
	for _, f := range trajectory.Formats {
		in := *o.inputs[f]
		if in == "" {
			continue
		}
		out := trajectory.OutputPath(in, cfg.OutputDir)
		start := time.Now()
		recs, err := trajectory.Run(f, in, out, trajectory.Options{DryRun: o.dryRun})
		if err != nil {
			logger.Error("conversion failed", "format", f, "input", in, "err", err)
			failed++
			continue
		}
		s := vienna.Summarize(recs)
		logger.Debug("pair statistics", "format", f, "mean_pairs", fmt.Sprintf("%.2f", s.MeanPairs), "std_pairs", fmt.Sprintf("%.2f", s.StdPairs), "max_pairs", s.MaxPairs, "max_length", s.MaxLength)
		if o.dryRun {
			logger.Info("dry-run: would write output", "format", f, "input", in, "output", out, "steps", s.Steps)
			continue
		}
		logger.Info("wrote output", "format", f, "input", in, "output", out, "steps", s.Steps, "duration_ms", time.Since(start).Milliseconds())
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
