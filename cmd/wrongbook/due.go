package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

func newDueCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "due",
		Short: "List questions due for review, highest priority first",
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

			now := time.Now()
			due, err := repository.FindDue(cmd.Context(), now)
			if err != nil {
				return fmt.Errorf("failed to load due wrong answers: %w", err)
			}
			if len(due) == 0 {
				fmt.Println("Nothing is due for review. Well done!")
				return nil
			}

			for _, record := range review.SortByPriority(due, now) {
				priority := review.Priority(record, now)
				fmt.Printf("%-8s %4d  %s (mastery %d%%)\n",
					coloredPriorityLevel(review.PriorityLevelOf(priority)),
					priority,
					record.QuestionTitle,
					review.MasteryScore(record),
				)
			}
			return nil
		},
	}

	return command
}
