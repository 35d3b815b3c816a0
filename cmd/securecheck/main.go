// Command securecheck runs the SecureCheck insight queries against a traffic
// stop file and prints the results as tables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/pkordes/securecheck/internal/config"
	"github.com/pkordes/securecheck/internal/dataset"
	"github.com/pkordes/securecheck/internal/query"
	"github.com/pkordes/securecheck/internal/report"
	"github.com/pkordes/securecheck/internal/service"
)

var (
	app = kingpin.New("securecheck", "Traffic stop insights from the command line.")

	dataPath = app.Flag("data", "Traffic stop CSV file. Required by summary and run.").
			Short('d').Envar("DATA_PATH").String()
	delimiter = app.Flag("delimiter", `Field delimiter: a single character or "tab".`).
			Default(",").Envar("DATA_DELIMITER").String()
	verbose = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()

	summaryCmd = app.Command("summary", "Print the headline KPIs.")
	queriesCmd = app.Command("queries", "List the named queries.")
	runCmd     = app.Command("run", "Run a named query.")
	runID      = runCmd.Arg("id", "Query ID, see 'queries'.").Required().Enum(queryIDs()...)
)

func queryIDs() []string {
	var ids []string
	for _, d := range query.Catalog() {
		ids = append(ids, d.ID)
	}
	return ids
}

func main() {
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	kingpin.FatalIfError(dispatch(context.Background(), os.Stdout, command), "")
}

// dispatch loads the file and runs command, writing tables to out.
func dispatch(ctx context.Context, out io.Writer, command string) error {
	if command == queriesCmd.FullCommand() {
		report.WriteCatalog(out, query.Catalog())
		return nil
	}

	if *dataPath == "" {
		return fmt.Errorf("--data or DATA_PATH is required for %s", command)
	}
	delim, err := config.ParseDelimiter(*delimiter)
	if err != nil {
		return err
	}
	svc := service.NewInsightService(dataset.NewSource(*dataPath, dataset.Options{Delimiter: delim}))

	switch command {
	case summaryCmd.FullCommand():
		kpi, err := svc.Summary(ctx)
		if err != nil {
			return err
		}
		report.WriteSummary(out, kpi)
	case runCmd.FullCommand():
		res, err := svc.Run(ctx, *runID)
		if err != nil {
			return err
		}
		report.WriteTable(out, res)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
