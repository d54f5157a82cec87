package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pdxcli/internal/config"
	"pdxcli/internal/daterange"
	"pdxcli/internal/infrastructure"
	"pdxcli/internal/tabular"
	"pdxcli/internal/validation"
	"pdxcli/pkg/contracts/domain"
)

func main() {
	start := flag.String("start", "", "start date (YYYY-MM-DD, inclusive)")
	end := flag.String("end", "", "end date (YYYY-MM-DD, inclusive)")
	manifest := flag.String("manifest", "", "YAML manifest listing tabular sources to filter")
	flag.Parse()

	if *start == "" || *end == "" || *manifest == "" {
		fmt.Fprintln(os.Stderr, "-start, -end, and -manifest are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
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

	m, err := tabular.LoadManifest(*manifest)
	if err != nil {
		slog.Error("Failed to load manifest", "error", err)
		os.Exit(1)
	}

	if err := validation.NewManifestValidator(nil).Validate(m); err != nil {
		slog.Error("Invalid manifest", "error", err)
		os.Exit(1)
	}

	report := tabular.NewProcessor().Process(m.Sources, r)

	fmt.Println(report.Summary())
	for _, item := range report.Items {
		switch item.Status {
		case domain.ItemStatusSkipped:
			fmt.Printf("  %-40s skipped: %s\n", item.Name, item.Reason)
		case domain.ItemStatusFailed:
			fmt.Printf("  %-40s FAILED: %s\n", item.Name, item.Reason)
		default:
			fmt.Printf("  %-40s %d rows -> %s\n", item.Name, item.Selected, item.Output)
		}
	}

	if report.Failed() > 0 {
		os.Exit(1)
	}
}
