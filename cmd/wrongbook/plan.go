package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wrongbook-app/wrongbook/internal/client"
	"github.com/wrongbook-app/wrongbook/internal/plan"
)

func newPlanCommand() *cobra.Command {
	planCommand := &cobra.Command{
		Use:   "plan",
		Short: "Generate and track spaced-repetition review plans",
	}

	planCommand.AddCommand(newPlanGenerateCommand())
	planCommand.AddCommand(newPlanProgressCommand())

	return planCommand
}

func newPlanGenerateCommand() *cobra.Command {
	var (
		hoursPerDay   float64
		daysAvailable int
		focusAreas    []string
		save          bool
	)

	command := &cobra.Command{
		Use:   "generate",
		Short: "Build a review plan from the current backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if hoursPerDay == 0 {
				hoursPerDay = cfg.Review.HoursPerDay
			}
			if daysAvailable == 0 {
				daysAvailable = cfg.Review.DaysAvailable
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

			generated := plan.Generate(records, plan.Preferences{
				HoursPerDay:   hoursPerDay,
				DaysAvailable: daysAvailable,
				FocusAreas:    focusAreas,
			}, time.Now())
			printPlanSummary(generated)

			if !save {
				return nil
			}

			planClient := client.NewPlanClient(cfg.Client.BaseURL, cfg.Client.MaxRetryAttempts)
			defer func() {
				_ = planClient.Close()
			}()
			if _, err := planClient.SavePlan(cmd.Context(), generated); err != nil {
				return fmt.Errorf("failed to save review plan: %w", err)
			}
			fmt.Printf("Saved plan %s\n", generated.PlanID)
			return nil
		},
	}

	command.Flags().Float64Var(&hoursPerDay, "hours", 0, "Study hours per day (defaults to the configured value)")
	command.Flags().IntVar(&daysAvailable, "days", 0, "Days available for the plan (defaults to the configured value)")
	command.Flags().StringSliceVar(&focusAreas, "focus", nil, "Focus areas to attach to the plan")
	command.Flags().BoolVar(&save, "save", false, "Save the plan to the review-plan service")

	return command
}

func newPlanProgressCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "progress",
		Short: "Show progress and pacing suggestions for the current plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			planClient := client.NewPlanClient(cfg.Client.BaseURL, cfg.Client.MaxRetryAttempts)
			defer func() {
				_ = planClient.Close()
			}()

			current, err := planClient.CurrentPlan(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch the current plan: %w", err)
			}
			if current == nil {
				fmt.Println("No plan has been saved yet. Run 'wrongbook plan generate --save' first.")
				return nil
			}

			progress := current.Progress()
			fmt.Printf("Plan %s: %d/%d questions (%d%%), %d/%d days (%d%%)\n",
				current.PlanID,
				progress.CompletedTasks, progress.TotalTasks, progress.CompletedPercentage,
				progress.CompletedDays, progress.TotalDays, progress.DaysPercentage)
			fmt.Printf("Estimated days to completion: %d\n", progress.EstimatedDaysToCompletion)

			for _, suggestion := range plan.SuggestAdjustments(progress) {
				fmt.Printf("- %s\n", suggestion.Message)
			}
			return nil
		},
	}

	return command
}

func printPlanSummary(p plan.ReviewPlan) {
	bold := color.New(color.Bold)

	bold.Printf("Review plan %s\n", p.PlanID)
	fmt.Printf("  %d questions over up to %d days, %.1fh/day (%d questions/day)\n",
		p.TotalQuestionsToReview, p.TotalDays, p.HoursPerDay, p.QuestionsPerDay)
	fmt.Printf("  Estimated success rate: %d%%\n", p.EstimatedSuccessRate)
	fmt.Println()

	for _, day := range p.DailyTasks {
		fmt.Printf("  Day %2d (%s): %d questions, ~%d min\n",
			day.DayNumber, day.Date.Format("2006-01-02"), len(day.Tasks), day.EstimatedDuration)
	}
	for _, goal := range p.WeeklyGoals {
		fmt.Printf("  Week %d (%s to %s): %d questions, target %d%% completion\n",
			goal.WeekNumber,
			goal.StartDate.Format("2006-01-02"), goal.EndDate.Format("2006-01-02"),
			goal.TargetQuestions, goal.TargetCompletionRate)
	}
}
