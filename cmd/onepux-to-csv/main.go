package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/sleroq/onepux-to-csv/internal/app/converter"
	"github.com/sleroq/onepux-to-csv/internal/config"
	"github.com/sleroq/onepux-to-csv/internal/logger"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:      "onepux-to-csv",
		Usage:     "Convert a 1Password .1pux export to a password manager CSV",
		ArgsUsage: "<input.1pux>",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output CSV path (defaults to the input path with a .csv extension)",
			},
			&cli.BoolFlag{
				Name:  "include-archived",
				Usage: "Include archived items",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of parallel workers (0 uses all CPUs)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "Disable the progress bar",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "conversion failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("expected exactly one input path")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cmd.IsSet("include-archived") {
		cfg.IncludeArchived = cmd.Bool("include-archived")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("no-progress") {
		cfg.NoProgress = cmd.Bool("no-progress")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	conv := converter.Converter{
		InputPath:       cmd.Args().First(),
		OutputPath:      cmd.String("output"),
		IncludeArchived: cfg.IncludeArchived,
		Workers:         cfg.WorkerCount(),
		Logger:          log,
	}
	if !cfg.NoProgress && converter.IsTerminal(os.Stderr) {
		conv.Progress = os.Stderr
	}

	stats, err := conv.Run(ctx)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("converted %d items to %s", stats.Rows, stats.Output)
	if converter.IsTerminal(os.Stdout) {
		msg = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Render(msg)
	}
	fmt.Println(msg)
	return nil
}
