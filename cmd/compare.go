package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rebar-check/core/config"
	"rebar-check/core/logger"
	"rebar-check/core/reconcile"
	"rebar-check/core/storage"
	"rebar-check/feature/compare"
	"rebar-check/feature/schedule"
	"rebar-check/feature/schedule/ifc"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for compare command
	compareMapping    string
	compareConflict   string
	compareOut        string
	compareFormat     string
	compareBucket     bool
	compareNoColor    bool
	compareFailOnDiff bool
)

// errSchedulesDiffer is returned by --fail-on-diff when any mark differs.
var errSchedulesDiffer = errors.New("schedules differ")

// compareCmd compares two schedule files.
var compareCmd = &cobra.Command{
	Use:   "compare <left> [right]",
	Short: "Compare bar quantities of two schedules",
	Long: `Reads two schedule exports (CSV, XML or IFC), joins them on bar mark and prints
one row per mark with both totals and whether they agree. With a single file the
parsed totals are printed without a verdict.

Examples:
  # Compare a bending list with a model export
  rebar-check compare list.csv model.ifc

  # Save the result for a spreadsheet
  rebar-check compare list.csv report.xml --out result.csv

  # Compare schedules stored in the configured bucket
  rebar-check compare --bucket project/list.csv project/model.ifc

  # Read a Revit model with a custom mapping and stop on conflicting marks
  rebar-check compare list.csv model.ifc --mapping revit.yaml --conflict fail`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareMapping, "mapping", "", "IFC mapping YAML file (see 'mapping init')")
	compareCmd.Flags().StringVar(&compareConflict, "conflict", "", "IFC conflict policy: warn, overwrite or fail (defaults to config)")
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "", "Also write the result as CSV to this file")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", formatTable, "Output format: table, json or csv")
	compareCmd.Flags().BoolVar(&compareBucket, "bucket", false, "Read the arguments as object keys from the storage bucket")
	compareCmd.Flags().BoolVar(&compareNoColor, "no-color", false, "Disable row colors")
	compareCmd.Flags().BoolVar(&compareFailOnDiff, "fail-on-diff", false, "Exit with an error when any mark differs")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	mapping, err := resolveMapping(cfg, compareMapping)
	if err != nil {
		return err
	}

	policyName := cfg.Ifc.ConflictPolicy
	if compareConflict != "" {
		policyName = compareConflict
	}
	policy, err := ifc.ParseConflictPolicy(policyName)
	if err != nil {
		return err
	}

	opts := compare.Options{
		Bucket:   cfg.Storage.Bucket,
		Prefix:   cfg.Storage.Prefix,
		Policy:   policy,
		CacheTTL: 0, // One-shot process
	}

	var report *compare.Report
	if compareBucket {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
		defer cancel()

		svc := compare.NewService(client, l, opts)
		report, err = svc.CompareObjects(ctx, mapping, args...)
		if err != nil {
			return err
		}
	} else {
		uploads := make([]compare.Upload, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read schedule: %w", err)
			}
			uploads = append(uploads, compare.Upload{Name: filepath.Base(path), Data: data})
		}

		svc := compare.NewService(nil, l, opts)
		report, err = svc.Compare(mapping, uploads...)
		if err != nil {
			return err
		}
	}

	if err := render(cmd.OutOrStdout(), compareFormat, report, !compareNoColor); err != nil {
		return err
	}

	printCompareReport(l, report)

	if compareOut != "" {
		if err := writeResultFile(compareOut, report.Result); err != nil {
			return err
		}
		l.Info("Result written", zap.String("path", compareOut))
	}

	if compareFailOnDiff && report.Result.HasVerdict && !report.Summary.Matches() {
		return errSchedulesDiffer
	}
	return nil
}

// printCompareReport logs the summary and IFC diagnostics.
func printCompareReport(l *zap.Logger, report *compare.Report) {
	s := report.Summary

	l.Info("Comparison report",
		zap.Strings("files", report.Result.Columns),
		zap.Int("total_marks", s.TotalMarks),
		zap.Int("equal", s.Equal),
		zap.Int("different", s.Different),
		zap.Int("only_left", s.OnlyLeft),
		zap.Int("only_right", s.OnlyRight),
	)

	for _, f := range report.Files {
		if f.Format != schedule.FormatIFC {
			continue
		}
		l.Info("IFC model",
			zap.String("file", f.Name),
			zap.String("vendor", f.Vendor),
			zap.Int("elements", f.Elements),
			zap.Int("marks", f.Marks),
			zap.Int("skipped", len(f.Skipped)),
			zap.Int("conflicts", len(f.Conflicts)),
		)

		// Show sample of skipped elements (max 5 for logger)
		maxShow := 5
		if len(f.Skipped) < maxShow {
			maxShow = len(f.Skipped)
		}
		for i := 0; i < maxShow; i++ {
			skip := f.Skipped[i]
			l.Warn("Skipped element",
				zap.Int("entity", skip.EntityID),
				zap.String("global_id", skip.GlobalID),
				zap.String("reason", skip.Reason),
			)
		}
		if len(f.Skipped) > maxShow {
			l.Warn("Additional skipped elements not shown", zap.Int("count", len(f.Skipped)-maxShow))
		}
	}
}

func writeResultFile(path string, res *reconcile.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := reconcile.WriteCSV(f, res); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
