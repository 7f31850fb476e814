package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

func newReviewCommand() *cobra.Command {
	var rating string

	command := &cobra.Command{
		Use:   "review <record-id>",
		Short: "Record a review outcome and reschedule the question",
		Args:  cobra.ExactArgs(1),
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

			id := args[0]
			var target *review.WrongAnswerRecord
			for i := range records {
				if records[i].ID == id {
					target = &records[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("wrong answer %s not found", id)
			}

			updated := review.Reviewed(*target, review.Rating(rating), time.Now())
			if err := repository.UpdateSchedule(cmd.Context(), updated.ID, updated.IntervalDays, updated.NextReviewTime); err != nil {
				return fmt.Errorf("failed to update review schedule: %w", err)
			}

			fmt.Printf("Rescheduled %q: next review in %d day(s) on %s\n",
				updated.QuestionTitle, updated.IntervalDays, updated.NextReviewTime.Format("2006-01-02"))
			return nil
		},
	}

	command.Flags().StringVar(&rating, "rating", string(review.RatingNormal),
		"How the review went: easy, normal, hard or forgotten")

	return command
}
