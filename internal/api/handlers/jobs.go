package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ryhoangf/iValuate/internal/engine"
)

// RollupRunner runs the price history rollup for one day.
type RollupRunner interface {
	RunHistoryRollup(ctx context.Context, day time.Time) (*engine.RollupResult, error)
}

// JobsHandler handles manual maintenance job triggers.
type JobsHandler struct {
	runner RollupRunner
	now    func() time.Time
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(r RollupRunner) *JobsHandler {
	return &JobsHandler{runner: r, now: time.Now}
}

// RollupInput selects the day to roll up.
type RollupInput struct {
	Date string `query:"date" doc:"Day to roll up (YYYY-MM-DD, default today)" example:"2026-03-01"`
}

// RollupOutput is the response body of the rollup trigger.
type RollupOutput struct {
	Body *engine.RollupResult
}

// Rollup summarizes current listings into today's (or the given day's)
// price history records.
func (h *JobsHandler) Rollup(ctx context.Context, input *RollupInput) (*RollupOutput, error) {
	day := h.now()
	if input.Date != "" {
		d, err := time.Parse(time.DateOnly, input.Date)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid date: " + input.Date)
		}
		day = d
	}

	result, err := h.runner.RunHistoryRollup(ctx, day)
	if err != nil {
		return nil, huma.Error500InternalServerError("history rollup failed: " + err.Error())
	}

	return &RollupOutput{Body: result}, nil
}

// RegisterJobRoutes registers maintenance job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-history-rollup",
		Method:      http.MethodPost,
		Path:        "/api/v1/jobs/rollup",
		Summary:     "Run price history rollup",
		Description: "Summarizes each listed product's current listings into one price history record for the day.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Rollup)
}
