package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pdxcli/internal/config"
	"pdxcli/internal/daterange"
	"pdxcli/internal/infrastructure"
	"pdxcli/internal/operations"
	"pdxcli/pkg/contracts"
)

func main() {
	start := flag.String("start", "", "start date (YYYY-MM-DD, inclusive)")
	end := flag.String("end", "", "end date (YYYY-MM-DD, inclusive)")
	configFile := flag.String("config", "", "optional YAML config file (env vars with PDX_ prefix also apply)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	if *start == "" || *end == "" {
		fmt.Fprintln(os.Stderr, "both -start and -end are required (YYYY-MM-DD)")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Route file logging under the output directory when one is configured
	if cfg.Output.Dir != "" && cfg.Logging.FilePath == "logs/pdxcli.log" {
		cfg.Logging.FilePath = config.NewPaths(cfg.Output.Dir).GetLogPath("exporter.log")
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	r, err := daterange.Parse(*start, *end)
	if err != nil {
		slog.Error("Invalid date range", "error", err)
		os.Exit(1)
	}

	state := operations.NewState(r, cfg)
	if cfg.Output.Dir != "" {
		if err := state.Paths.EnsureDirectories(); err != nil {
			slog.Error("Failed to create output directories", "error", err)
			os.Exit(1)
		}
	}

	manager := operations.NewManager()
	manager.Register(operations.NewStreamingJournalStep())
	manager.Register(operations.NewScreenshotsStep())

	result := manager.Run(context.Background(), state)

	printSummary(result, state)

	if result.Failed() > 0 {
		os.Exit(1)
	}
}

// printSummary writes a human-readable run report to stdout
func printSummary(result *operations.Result, state *operations.State) {
	fmt.Printf("Run %s (%s)\n", result.ID, state.Range)
	for _, step := range result.Steps {
		switch step.Status {
		case operations.StepStatusSkipped:
			fmt.Printf("  %-22s skipped: %s\n", step.StepName, step.Reason)
		case operations.StepStatusFailed:
			fmt.Printf("  %-22s FAILED: %s\n", step.StepName, step.Reason)
		default:
			fmt.Printf("  %-22s done", step.StepName)
			if report := state.Report(step.StepID); report != nil {
				fmt.Printf(" (%s)", report.Summary())
			}
			fmt.Println()
		}
	}
}
