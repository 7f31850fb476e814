package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wrongbook-app/wrongbook/internal/report"
	"github.com/wrongbook-app/wrongbook/internal/review"
)

func newReportCommand() *cobra.Command {
	var toPDF bool

	command := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown statistics report, optionally converted to PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			records, err := repository.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load wrong answers: %w", err)
			}

			now := time.Now()
			stats := review.GenerateStatistics(records, now)
			path, err := report.WriteMarkdown(cfg.Outputs.ReportDirectory, stats,
				review.RecommendedDailyCount(stats, cfg.Review.HoursPerDay), now)
			if err != nil {
				return fmt.Errorf("failed to write the report: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)

			if !toPDF {
				return nil
			}
			pdfPath, err := report.ConvertMarkdownToPDF(path)
			if err != nil {
				return fmt.Errorf("failed to convert the report to PDF: %w", err)
			}
			fmt.Printf("Wrote %s\n", pdfPath)
			return nil
		},
	}

	command.Flags().BoolVar(&toPDF, "pdf", false, "Also convert the report to PDF")

	return command
}
