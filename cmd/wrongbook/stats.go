package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

func newStatsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show mastery and scheduling statistics for the wrong-answer backlog",
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
			printStatistics(stats, review.RecommendedDailyCount(stats, cfg.Review.HoursPerDay))
			return nil
		},
	}

	return command
}

func printStatistics(stats review.Statistics, recommendedDaily int) {
	bold := color.New(color.Bold)

	bold.Println("Backlog")
	fmt.Printf("  Total:            %d\n", stats.Total)
	fmt.Printf("  Mastered:         %d (%d%%)\n", stats.Mastered, stats.MasteredPercentage)
	fmt.Printf("  Reviewing:        %d (%d%%)\n", stats.Reviewing, stats.ReviewingPercentage)
	fmt.Printf("  Not yet reviewed: %d (%d%%)\n", stats.Unreviewed, stats.UnreviewedPercentage)
	fmt.Println()

	bold.Println("Schedule")
	fmt.Printf("  Due today:        %d\n", stats.DueTodayCount)
	if stats.OverdueCount > 0 {
		fmt.Printf("  Overdue:          %s\n", color.RedString("%d", stats.OverdueCount))
	} else {
		fmt.Printf("  Overdue:          0\n")
	}
	fmt.Printf("  Average priority: %d (%s)\n", stats.AveragePriority, coloredPriorityLevel(review.PriorityLevelOf(stats.AveragePriority)))
	fmt.Printf("  Average mastery:  %d%%\n", stats.AverageMastery)
	fmt.Printf("  Recommended questions per day: %d\n", recommendedDaily)
}

func coloredPriorityLevel(level review.PriorityLevel) string {
	switch level {
	case review.PriorityLevelCritical:
		return color.New(color.FgRed, color.Bold).Sprint(string(level))
	case review.PriorityLevelHigh:
		return color.YellowString(string(level))
	case review.PriorityLevelMedium:
		return color.CyanString(string(level))
	default:
		return color.GreenString(string(level))
	}
}
