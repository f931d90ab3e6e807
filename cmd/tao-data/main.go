package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"tao-data/internal/app"
	"tao-data/internal/provider"
	"tao-data/internal/slogx"
	"tao-data/internal/store"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Store  *store.Store
	Source provider.MarketSource
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&fetchCmd{}, "dataset")
	subcommands.Register(&verifyCmd{}, "dataset")
	subcommands.Register(&exportCmd{}, "dataset")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// initApp builds dependencies and resets the default logger to the configured
// level.
func initApp() (*App, error) {
	a, err := InitializeApp()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))
	return a, nil
}

type fetchCmd struct{}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "fetch new daily prices and merge them into the store"
}
func (*fetchCmd) Usage() string {
	return `fetch:
  Fetch any daily closing prices newer than the last stored entry and append
  them to the dataset file. Aborts without writing on any failure.
`
}
func (*fetchCmd) SetFlags(*flag.FlagSet) {}

func (*fetchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := initApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.Source.Close()

	if err := app.RunFetch(ctx, a.Config, a.Store, a.Source); err != nil {
		slog.Error("fetch failed, store untouched", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type verifyCmd struct{}

func (*verifyCmd) Name() string { return "verify" }
func (*verifyCmd) Synopsis() string {
	return "check the structural invariants of the stored dataset"
}
func (*verifyCmd) Usage() string {
	return `verify:
  Load the dataset file and check that it is sorted ascending, holds at most
  one point per UTC day, and contains no entry for the current day.
`
}
func (*verifyCmd) SetFlags(*flag.FlagSet) {}

func (*verifyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := initApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.Source.Close()

	if err := app.RunVerify(a.Config, a.Store); err != nil {
		slog.Error("verification failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	format string
	outDir string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "write a snapshot of the dataset in another format"
}
func (*exportCmd) Usage() string {
	return `export [-format json|csv|parquet] [-out DIR]:
  Write a snapshot copy of the dataset. The store file itself is not touched.
`
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "snapshot format: json, csv or parquet")
	f.StringVar(&c.outDir, "out", "exports", "directory for snapshot files")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := initApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.Source.Close()

	if err := app.RunExport(a.Config, a.Store, c.format, c.outDir); err != nil {
		slog.Error("export failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
