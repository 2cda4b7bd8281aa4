// Package main is a command line tool that outlines markdown-like documents
// by their section headers.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/apstndb/protoform/internal/format"
	"github.com/apstndb/protoform/parser"
)

type globalOptions struct {
	Protoform protoformOptions `group:"protoform"`
}

// We can't use `default` because protoform uses multiple flags.NewParser() to process config files and flags.
type protoformOptions struct {
	Format          string `long:"format" short:"f" description:"Output format (table, tree, json, yaml, debug)" default-mask:"table"`
	Partial         bool   `long:"partial" description:"Report unconsumed input instead of failing"`
	Strict          bool   `long:"strict" description:"Reject lines that start with the marker but are not headers"`
	Marker          string `long:"marker" description:"Header marker character" default-mask:"#"`
	Width           *int   `long:"width" short:"w" description:"Table width" default-mask:"terminal width"`
	TabWidth        int    `long:"tab-width" description:"Display width of a tab character" default-mask:"4"`
	Verbose         bool   `long:"verbose" short:"v" description:"Include text lines in tree output"`
	SkipColumnNames bool   `long:"skip-column-names" description:"Omit the table header"`
	NoColor         bool   `long:"no-color" description:"Disable colored diagnostics"`
	LogLevel        string `long:"log-level" description:"Log level" choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR" default-mask:"WARN"`
	LogParse        bool   `long:"log-parse" description:"Emit parser trace log using zap"`
	Jobs            int    `long:"jobs" short:"j" description:"Number of inputs parsed concurrently" default-mask:"GOMAXPROCS"`
	Help            bool   `long:"help" short:"h" hidden:"true"`
}

const (
	appName  = "protoform"
	appUsage = "[OPTIONS] [FILE...]"
)

func main() {
	err := run(context.Background(), os.Args[1:], afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr)
	if err != nil && !isReported(err) {
		printError(os.Stderr, err)
	}
	os.Exit(GetExitCode(err))
}

func newFlagParser(data *globalOptions, options flags.Options) *flags.Parser {
	p := flags.NewParser(data, options)
	p.Name = appName
	p.Usage = appUsage
	return p
}

func run(ctx context.Context, args []string, fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) error {
	var gopts globalOptions

	// process config files at first
	configFileParser := newFlagParser(&gopts, flags.None)
	if err := readConfigFile(fs, configFileParser, configFilePaths()); err != nil {
		return fmt.Errorf("invalid config file: %w", err)
	}

	// then, process command line options with higher precedence than configuration files
	flagParser := newFlagParser(&gopts, flags.PassDoubleDash)

	// Workaround to avoid to display config value as default
	parserForHelp := newFlagParser(&globalOptions{}, flags.None)

	files, err := flagParser.ParseArgs(args)
	if err != nil {
		parserForHelp.WriteHelp(stderr)
		printError(stderr, fmt.Errorf("invalid options: %w", err))
		return NewExitCodeError(exitCodeError)
	}
	if gopts.Protoform.Help {
		parserForHelp.WriteHelp(stdout)
		return nil
	}

	settings, err := newSettings(gopts.Protoform, stdout)
	if err != nil {
		return err
	}

	setLogLevel(stderr, settings.logLevel)
	if settings.noColor {
		color.NoColor = true
	}

	var tracer parser.Tracer
	if settings.logParse {
		logger := newParseLogger(stderr)
		defer func() { _ = logger.Sync() }()
		tracer = ParseLogger(logger)
	}

	slog.Debug("starting", "files", files, "format", settings.format, "mode", settings.mode)

	app := &App{
		Fs:       fs,
		In:       stdin,
		Out:      stdout,
		Err:      stderr,
		Settings: settings,
		Tracer:   tracer,
	}
	return app.Run(ctx, files)
}

// settings are the validated options.
type settings struct {
	format    format.Format
	mode      parser.Mode
	marker    rune
	strict    bool
	jobs      int
	logLevel  slog.Level
	logParse  bool
	noColor   bool
	fmtConfig format.Config
}

func newSettings(opts protoformOptions, stdout io.Writer) (*settings, error) {
	f, err := format.ParseFormat(lo.CoalesceOrEmpty(opts.Format, string(format.FormatTable)))
	if err != nil {
		return nil, err
	}

	marker := lo.CoalesceOrEmpty(opts.Marker, "#")
	if utf8.RuneCountInString(marker) != 1 {
		return nil, fmt.Errorf("invalid --marker %q: must be a single character", marker)
	}
	markerRune, _ := utf8.DecodeRuneInString(marker)
	if markerRune == ' ' || markerRune == '\n' || markerRune == utf8.RuneError {
		return nil, fmt.Errorf("invalid --marker %q", marker)
	}

	if opts.Jobs < 0 {
		return nil, fmt.Errorf("invalid --jobs %d: must not be negative", opts.Jobs)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(lo.CoalesceOrEmpty(opts.LogLevel, "WARN"))); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return &settings{
		format:   f,
		mode:     lo.Ternary(opts.Partial, parser.ModePartial, parser.ModeComplete),
		marker:   markerRune,
		strict:   opts.Strict,
		jobs:     opts.Jobs,
		logLevel: level,
		logParse: opts.LogParse,
		noColor:  opts.NoColor,
		fmtConfig: format.Config{
			Width:           screenWidth(opts.Width, stdout),
			TabWidth:        opts.TabWidth,
			Marker:          markerRune,
			Verbose:         opts.Verbose,
			SkipColumnNames: opts.SkipColumnNames,
		},
	}, nil
}

// screenWidth returns the explicit width if given, the terminal width if
// stdout is a terminal, and 0 otherwise.
func screenWidth(width *int, stdout io.Writer) int {
	if width != nil {
		return *width
	}

	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		slog.Debug("failed to get terminal size", "err", err)
		return 0
	}
	return w
}

// setLogLevel initializes the default logger with the given level.
func setLogLevel(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

const cnfFileName = ".protoform.cnf"

func configFilePaths() []string {
	var cnfFiles []string
	if currentUser, err := user.Current(); err == nil {
		cnfFiles = append(cnfFiles, filepath.Join(currentUser.HomeDir, cnfFileName))
	}

	cwd, _ := os.Getwd() // ignore err
	return append(cnfFiles, filepath.Join(cwd, cnfFileName))
}

func readConfigFile(fs afero.Fs, p *flags.Parser, cnfFiles []string) error {
	iniParser := flags.NewIniParser(p)
	for _, cnfFile := range cnfFiles {
		// skip if missing
		if _, err := fs.Stat(cnfFile); err != nil {
			continue
		}

		f, err := fs.Open(cnfFile)
		if err != nil {
			return err
		}
		err = iniParser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cnfFile, err)
		}
	}
	return nil
}
