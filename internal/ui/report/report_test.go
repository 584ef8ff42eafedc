package report_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/ui/report"
)

func TestRender(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	evaluatedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	materialized := &domain.EvaluationResult{
		Asset: domain.NewAssetKey("raw_events"),
		Root: &domain.ConditionResult{
			Label:      "on_cron(0 * * * *)",
			TrueSubset: domain.NewSubsetOf(domain.DefaultPartitionKey),
		},
		EvaluatedAt: evaluatedAt,
	}

	r := &domain.TickReport{
		EvaluatedAt: evaluatedAt,
		Outcomes: []domain.AssetOutcome{
			{
				Asset:  domain.NewAssetKey("raw_events"),
				Status: domain.StatusMaterialize,
				Result: materialized,
			},
			{
				Asset:  domain.NewAssetKey("daily_rollup"),
				Status: domain.StatusSkip,
			},
			{
				Asset:  domain.NewAssetKey("broken"),
				Status: domain.StatusFail,
				Reason: "condition evaluation failed",
			},
			{
				Asset:  domain.NewAssetKey("blocked_model"),
				Status: domain.StatusBlocked,
				Reason: "upstream evaluation failed",
			},
		},
		Failures: []domain.AssetFailure{
			{Asset: domain.NewAssetKey("broken"), Err: errors.New("boom")},
		},
		RunRequests: []domain.RunRequest{
			domain.NewRunRequest("raw_events"),
		},
	}

	g := goldie.New(t)
	g.Assert(t, "tick_report", []byte(report.Render(r)))
}

func TestRender_Empty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := &domain.TickReport{
		EvaluatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	out := report.Render(r)
	assert.Contains(t, out, "TICK 2024-01-01T00:00:00Z")
	assert.Contains(t, out, "0 materialize, 0 skip")
	assert.NotContains(t, out, "Run requests:")
}

func TestRender_PartitionedRequest(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := &domain.TickReport{
		EvaluatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RunRequests: []domain.RunRequest{
			domain.NewRunRequest("daily_rollup", "2023-12-30", "2023-12-31"),
		},
	}

	out := report.Render(r)
	assert.Contains(t, out, "daily_rollup [2023-12-30, 2023-12-31]")
}
