package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/obralens/obralens"
	"github.com/obralens/obralens/config"
	"github.com/obralens/obralens/dataset"
	"github.com/obralens/obralens/engine"
	"github.com/obralens/obralens/querylog"
)

// ============================================================================
// OBRALENS CLI — ask questions about construction-project spreadsheets
// ============================================================================

const version = "0.1.0"

var (
	flagConfig  string
	flagData    string
	flagLogDB   string
	flagFormat  string
	flagOut     string
	flagNoChart bool
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:     "obralens",
		Short:   "Natural-language answers over construction-project spreadsheets",
		Version: version,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultFile, "config file path")
	root.PersistentFlags().StringVar(&flagData, "data", "", "dataset directory (overrides config)")
	root.PersistentFlags().StringVar(&flagLogDB, "query-log", "", "SQLite query-log path (overrides config)")
	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: text, json, pretty, csv")
	root.PersistentFlags().StringVar(&flagOut, "out", "", "write output to file instead of stdout")
	root.PersistentFlags().BoolVar(&flagNoChart, "no-chart", false, "disable chart building")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newAskCmd(), newReplCmd(), newProjectsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <query>",
		Short: "Answer a single query and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, closer, err := buildSession()
			if err != nil {
				return err
			}
			defer closer()

			result, err := session.Answer(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return render(result, flagFormat, flagOut)
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive query loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, closer, err := buildSession()
			if err != nil {
				return err
			}
			defer closer()

			// Single-slot last result: each answer replaces the previous
			// one, and "exportar" writes whatever is currently held.
			var last *engine.Result

			scanner := bufio.NewScanner(os.Stdin)
			fmt.Println("obralens — escribe una consulta (\"salir\" para terminar, \"exportar <archivo>\" para guardar la última respuesta)")
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "salir" || line == "exit" {
					break
				}
				if path, ok := strings.CutPrefix(line, "exportar "); ok {
					if last == nil {
						fmt.Println("no hay resultado para exportar")
						continue
					}
					if err := render(last, "csv", strings.TrimSpace(path)); err != nil {
						return err
					}
					fmt.Println("exportado a " + strings.TrimSpace(path))
					continue
				}

				last, err = session.Answer(line)
				if err != nil {
					return err
				}
				if err := render(last, flagFormat, ""); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}

func newProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the projects found across the loaded datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			src, err := loadSources(cfg)
			if err != nil {
				return err
			}

			session := obralens.NewSession()
			index := session.Initialize(src)
			fmt.Printf("%d proyectos indexados\n", index.Len())
			for _, name := range index.Names() {
				fmt.Println("  " + name)
			}
			return nil
		},
	}
}

// ============================================================================
// WIRING
// ============================================================================

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagData != "" {
		cfg.DataDir = flagData
	}
	if flagLogDB != "" {
		cfg.QueryLog = flagLogDB
	}
	if flagNoChart {
		cfg.Charts = false
	}
	return cfg, nil
}

func loadSources(cfg config.Config) (engine.Sources, error) {
	if len(cfg.Datasets) > 0 {
		paths := make(map[dataset.Name]string, len(cfg.Datasets))
		for name, path := range cfg.Datasets {
			paths[dataset.Name(name)] = path
		}
		return dataset.LoadFiles(paths)
	}
	return dataset.LoadDir(cfg.DataDir)
}

func buildSession() (*obralens.Session, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cfg.LogLevel)

	opts := []obralens.SessionOption{obralens.WithLogger(logger)}
	if cfg.Charts {
		opts = append(opts, obralens.WithChart(engine.NewChartBuilder()))
	}

	closer := func() {}
	if cfg.QueryLog != "" {
		recorder, err := querylog.OpenSQLite(cfg.QueryLog)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, obralens.WithRecorder(recorder))
		closer = func() { recorder.Close() }
	}

	src, err := loadSources(cfg)
	if err != nil {
		closer()
		return nil, nil, err
	}

	session := obralens.NewSession(opts...)
	session.Initialize(src)
	return session, closer, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if flagVerbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(lvl).With().Timestamp().Logger()
}
