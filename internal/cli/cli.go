package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/hypergraph/internal/app"
	"github.com/vk/hypergraph/internal/config"
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

// pathList collects a flag that may be given several times.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hypergraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hypergraph - Extract a debate's positions and arguments from a Hypernomicon
database into a GoJS graph, keeping the layout edited in the viewer.

Usage:
  hypergraph [options] [RECORD_PATH ...]

Arguments:
  RECORD_PATH
    Hypernomicon XML record file, or a directory of them. Defaults to
    Debates.xml, Positions.xml and Arguments.xml in the working directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	var inputs pathList
	flagSet.Var(&inputs, "input", "Record file or directory. May be repeated.")
	flagSet.Var(&inputs, "i", "Record file or directory (shorthand).")
	rootFlag := flagSet.Int("root", 1, "Id of the debate to extract. The all-debates id selects everything.")
	jsonFlag := flagSet.String("json", "hyper2gojs.json", "Graph description file, or s3://bucket/key. Its saved layout is kept.")
	htmlFlag := flagSet.String("html", "blockEditor.html", "Host page to embed the graph into, or s3://bucket/key. Empty disables it.")
	configFlag := flagSet.String("config", "", "HCL project file. Defaults to "+app.DefaultProjectFile+" when present.")
	openFlag := flagSet.Bool("open", false, "Open the host page in the desktop viewer after writing it.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the merged graph description instead of writing files.")
	offsetFlag := flagSet.Int("offset", 10000, "Added to argument ids to keep their keys apart from position keys.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Only flags present on the command line become overrides.
	var overrides config.Overrides
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			overrides.RootDebate = rootFlag
		case "json":
			overrides.JSON = jsonFlag
		case "html":
			overrides.HTML = htmlFlag
		case "open":
			overrides.Open = openFlag
		case "offset":
			overrides.ArgumentKeyOffset = offsetFlag
		}
	})
	inputs = append(inputs, flagSet.Args()...)
	if len(inputs) > 0 {
		overrides.Paths = inputs
	}
	slog.Debug("Record paths determined.", "paths", []string(inputs))

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: *configFlag,
		Flags:      overrides,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		DryRun:     *dryRunFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}
