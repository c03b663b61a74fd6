package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/fastdeck/internal/app"
)

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
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("fastdeck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
fastdeck - a simulation input-deck reader.

Usage:
  fastdeck [options] [DECK_PATH]

Arguments:
  DECK_PATH
    Path to a single deck file or a directory containing .fst/.dat files.

Options:
`)
		flagSet.PrintDefaults()
	}

	deckFlag := flagSet.String("deck", "", "Path to the deck file or directory.")
	dFlag := flagSet.String("d", "", "Path to the deck file or directory (shorthand).")
	manifestFlag := flagSet.String("manifest", "", "Path to an HCL merge manifest listing decks to combine.")
	headerLinesFlag := flagSet.Int("header-lines", 0, "Number of leading lines to treat as header.")
	keepHeaderFlag := flagSet.Bool("keep-header", false, "Store header lines verbatim in the output document.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *deckFlag != "" {
		path = *deckFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" && *manifestFlag == "" {
		flagSet.Usage()
		return nil, true, nil
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

	config, err := app.NewConfig(app.Config{
		DeckPath:     path,
		ManifestPath: *manifestFlag,
		HeaderLines:  *headerLinesFlag,
		KeepHeader:   *keepHeaderFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
