package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/csvplot/internal/app"
	"github.com/specialistvlad/csvplot/internal/config"
)

// MissingKeysMessage is printed when no column to plot was requested.
const MissingKeysMessage = "Please provide keys to plot"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags and input paths may be interleaved.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("csvplot", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
csvplot - Terminal line plots for CSV-like logs.

Usage:
  csvplot [options] INPUT...

Arguments:
  INPUT
    Path to a delimited text file, or a directory searched for files ending in --ext.
    Lines starting with the comment marker are ignored; the first remaining line is the header.

Options:
`)
		flagSet.PrintDefaults()
	}

	keysFlag := flagSet.String("keys", "", "Comma-separated list of columns to plot.")
	groupFlag := flagSet.String("group", "", "Column whose distinct values split each plotted column into series (e.g. 'sample').")
	configFlag := flagSet.String("config", "", "Path to an HCL plot configuration file or directory.")
	numericFlag := flagSet.Bool("numeric", false, "Convert every cell to a number while parsing.")
	strictFlag := flagSet.Bool("strict", false, "Fail on rows and files whose columns do not line up.")
	summaryFlag := flagSet.Bool("summary", false, "Print statistics for every plotted series.")
	commentFlag := flagSet.String("comment", "", "Comment marker starting ignored lines. (default \"#\")")
	delimiterFlag := flagSet.String("delimiter", "", "Field delimiter. (default \",\")")
	extFlag := flagSet.String("ext", "", "File extension searched for in directory inputs. (default \".csv\")")
	heightFlag := flagSet.Int("height", 0, "Chart height in rows. (default 15)")
	widthFlag := flagSet.Int("width", 0, "Chart width in columns. (default 80)")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	inputs, err := parseInterleaved(flagSet, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "inputs", inputs)

	if len(inputs) == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "at least one INPUT is required"}
	}
	for _, path := range inputs {
		if _, err := os.Stat(path); err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("can't open '%s': %v", path, err)}
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *heightFlag < 0 || *widthFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid chart size: height and width must not be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Inputs:     inputs,
		ConfigPath: *configFlag,
		Keys:       config.SplitKeys(*keysFlag),
		GroupBy:    strings.TrimSpace(*groupFlag),
		Numeric:    *numericFlag,
		Strict:     *strictFlag,
		Summary:    *summaryFlag,
		Comment:    *commentFlag,
		Delimiter:  *delimiterFlag,
		Extension:  *extFlag,
		Height:     *heightFlag,
		Width:      *widthFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if errors.Is(err, app.ErrNoKeys) {
		return nil, false, &ExitError{Code: 1, Message: MissingKeysMessage}
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// parseInterleaved parses flags that may appear before, between or after
// positional arguments and returns the positional ones in order. Everything
// after "--" is positional.
func parseInterleaved(flagSet *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flagSet.Parse(args); err != nil {
			return nil, err
		}
		rest := flagSet.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// flag stops at "--" and drops it, so anything left after a
		// terminator is purely positional.
		if len(args) > len(rest) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
