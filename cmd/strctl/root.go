package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/carmesim/libstring/strbuf"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	configPath  string
	inputFile   string
	charset     string
	maxCapacity int

	// settings is the merged view of the config file and flags.
	settings = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "strctl",
	Short: "Run libstring buffer operations from the command line",
	Long: `strctl builds string buffers from its arguments (or from a file with --file),
runs one libstring operation on them and prints the result.

Capacity limits, the input charset and logging can be set in a TOML or YAML
config file passed with --config; flags override the file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.StringVarP(&configPath, "config", "c", "", "Config file (.toml, .yaml or .yml)")
	pf.StringVarP(&inputFile, "file", "f", "", "Read the input string from a file instead of the first argument")
	pf.StringVar(&charset, "charset", "", "Charset of --file contents (e.g. windows-1252); default UTF-8")
	pf.IntVar(&maxCapacity, "max-capacity", strbuf.DefaultMaxCapacity, "Largest buffer capacity in bytes")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// loadSettings merges the config file and the flags that were set, then
// installs the logger.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := defaultConfig()
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		cfg.JSON = jsonOut
	}
	if flags.Changed("charset") {
		cfg.Charset = charset
	}
	if flags.Changed("max-capacity") {
		cfg.MaxCapacity = maxCapacity
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := newLogger(cfg, quiet)
	if err != nil {
		return err
	}
	strbuf.SetLogger(logger)
	settings = cfg
	return nil
}

// newLogger writes diagnostics to stderr at the configured level. Quiet mode
// keeps errors only.
func newLogger(cfg Config, quiet bool) (*slog.Logger, error) {
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// newRegistry returns the registry a command allocates from. Commands
// release it before returning.
func newRegistry() *strbuf.Registry {
	return strbuf.NewRegistry(&strbuf.Options{MaxCapacity: settings.MaxCapacity})
}

// inputBuffer builds the input buffer from --file or args[0] and returns the
// remaining arguments, which must number between minRest and maxRest.
func inputBuffer(r *strbuf.Registry, args []string, minRest, maxRest int) (*strbuf.Buffer, []string, error) {
	var (
		b   *strbuf.Buffer
		err error
	)
	if inputFile != "" {
		printVerbose("Reading input: %s\n", inputFile)
		b, err = r.Load(inputFile, settings.Charset)
	} else {
		if len(args) == 0 {
			return nil, nil, fmt.Errorf("missing input string (pass it as the first argument or use --file)")
		}
		b, err = r.From(args[0])
		args = args[1:]
	}
	if err != nil {
		return nil, nil, err
	}
	if len(args) < minRest || len(args) > maxRest {
		if minRest == maxRest {
			return nil, nil, fmt.Errorf("expected %d argument(s) after the input, got %d", minRest, len(args))
		}
		return nil, nil, fmt.Errorf("expected %d to %d argument(s) after the input, got %d", minRest, maxRest, len(args))
	}
	return b, args, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// bufferResult is the JSON shape of a single-buffer result.
type bufferResult struct {
	Value    string `json:"value"`
	Size     int    `json:"size"`
	Reserved int    `json:"reserved"`
}

func resultOf(b *strbuf.Buffer) bufferResult {
	return bufferResult{Value: b.String(), Size: b.Len(), Reserved: b.Cap()}
}

// printBuffer prints a buffer's content, or its content and sizes as JSON.
func printBuffer(b *strbuf.Buffer) error {
	if settings.JSON {
		return printJSON(resultOf(b))
	}
	printInfo("%s\n", b)
	printVerbose("size=%d reserved=%d\n", b.Len(), b.Cap())
	return nil
}
