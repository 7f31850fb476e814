// Package client provides the HTTP client for the review-plan service.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/wrongbook-app/wrongbook/internal/plan"
)

// PlanClient talks to the review-plan endpoints. Transient failures are
// retried with backoff; the caller owns timeouts through the context.
type PlanClient struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewPlanClient creates a client for the service at baseURL.
func NewPlanClient(baseURL string, retryAttempts uint) *PlanClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &PlanClient{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (c *PlanClient) Close() error {
	return c.httpClient.Close()
}

// SavePlan posts the plan JSON verbatim and returns the stored plan.
func (c *PlanClient) SavePlan(ctx context.Context, p plan.ReviewPlan) (plan.ReviewPlan, error) {
	var saved plan.ReviewPlan
	if err := retry.Do(
		func() error {
			res, err := c.httpClient.R().
				SetContext(ctx).
				SetBody(p).
				SetResult(&saved).
				Post("/review-plans")
			if err != nil {
				return err
			}
			if res.IsError() {
				err := fmt.Errorf("response error %d: %s", res.StatusCode(), res.String())
				if !isRetryableStatus(res.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(retry.BackOffDelay),
	); err != nil {
		return plan.ReviewPlan{}, err
	}
	return saved, nil
}

// CurrentPlan fetches the most recently saved plan, or nil when none exists.
func (c *PlanClient) CurrentPlan(ctx context.Context) (*plan.ReviewPlan, error) {
	var current plan.ReviewPlan
	found := false
	if err := retry.Do(
		func() error {
			res, err := c.httpClient.R().
				SetContext(ctx).
				SetResult(&current).
				Get("/review-plans/current")
			if err != nil {
				return err
			}
			if res.StatusCode() == http.StatusNotFound {
				return nil
			}
			if res.IsError() {
				err := fmt.Errorf("response error %d: %s", res.StatusCode(), res.String())
				if !isRetryableStatus(res.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			found = true
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(retry.BackOffDelay),
	); err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &current, nil
}

// isRetryableStatus reports whether the status is worth another attempt.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
