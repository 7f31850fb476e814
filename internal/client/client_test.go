package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrongbook-app/wrongbook/internal/plan"
)

func TestSavePlan(t *testing.T) {
	t.Run("posts the plan and returns the stored copy", func(t *testing.T) {
		var received plan.ReviewPlan
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/review-plans", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			require.NoError(t, json.NewEncoder(w).Encode(received))
		}))
		defer ts.Close()

		c := NewPlanClient(ts.URL, 2)
		defer func() {
			_ = c.Close()
		}()

		saved, err := c.SavePlan(context.Background(), plan.ReviewPlan{PlanID: "plan-1", QuestionsPerDay: 30})
		require.NoError(t, err)
		assert.Equal(t, "plan-1", saved.PlanID)
		assert.Equal(t, "plan-1", received.PlanID)
		assert.Equal(t, 30, saved.QuestionsPerDay)
	})

	t.Run("retries server errors until success", func(t *testing.T) {
		attempts := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"planId": "plan-1"}`))
		}))
		defer ts.Close()

		c := NewPlanClient(ts.URL, 2)
		defer func() {
			_ = c.Close()
		}()

		saved, err := c.SavePlan(context.Background(), plan.ReviewPlan{PlanID: "plan-1"})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, "plan-1", saved.PlanID)
	})

	t.Run("does not retry a client error", func(t *testing.T) {
		attempts := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": "review plan is missing planId"}`))
		}))
		defer ts.Close()

		c := NewPlanClient(ts.URL, 2)
		defer func() {
			_ = c.Close()
		}()

		_, err := c.SavePlan(context.Background(), plan.ReviewPlan{})
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
		assert.Contains(t, err.Error(), "response error 400")
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		attempts := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		c := NewPlanClient(ts.URL, 1)
		defer func() {
			_ = c.Close()
		}()

		_, err := c.SavePlan(context.Background(), plan.ReviewPlan{PlanID: "plan-1"})
		require.Error(t, err)
		assert.Equal(t, 2, attempts)
	})
}

func TestCurrentPlan(t *testing.T) {
	t.Run("returns the latest plan", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/review-plans/current", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"planId": "plan-1", "questionsPerDay": 30}`))
		}))
		defer ts.Close()

		c := NewPlanClient(ts.URL, 2)
		defer func() {
			_ = c.Close()
		}()

		current, err := c.CurrentPlan(context.Background())
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "plan-1", current.PlanID)
		assert.Equal(t, 30, current.QuestionsPerDay)
	})

	t.Run("no plan saved yet", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "no review plan has been saved"}`))
		}))
		defer ts.Close()

		c := NewPlanClient(ts.URL, 2)
		defer func() {
			_ = c.Close()
		}()

		current, err := c.CurrentPlan(context.Background())
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("retries server errors until success", func(t *testing.T) {
		attempts := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"planId": "plan-1"}`))
		}))
		defer ts.Close()

		c := NewPlanClient(ts.URL, 2)
		defer func() {
			_ = c.Close()
		}()

		current, err := c.CurrentPlan(context.Background())
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, 2, attempts)
	})
}
