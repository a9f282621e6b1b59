package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/specialistvlad/csvplot/internal/app"
	"github.com/specialistvlad/csvplot/internal/cli"
	"github.com/specialistvlad/csvplot/internal/hcl"
)

// main is the entrypoint for the csvplot application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, color.Red.Sprint(exitErr.Message))
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	csvplotApp, err := app.NewApp(outW, errW, appConfig, loader, nil)
	if errors.Is(err, app.ErrNoKeys) {
		return &cli.ExitError{Code: 1, Message: cli.MissingKeysMessage}
	}
	if err != nil {
		return err
	}

	return csvplotApp.Run(context.Background())
}
