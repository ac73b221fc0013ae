package usecases

import (
	"context"

	"labdesk/internal/domain/request"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type GetStatsResult struct {
	Pending            int64    `json:"pending"`
	InProgress         int64    `json:"in_progress"`
	Resolved           int64    `json:"resolved"`
	Cancelled          int64    `json:"cancelled"`
	Total              int64    `json:"total"`
	AverageWaitSeconds *float64 `json:"average_wait_seconds"`
}

// GetStatsUseCase aggregates queue counters: one count per status plus the
// average wait of resolved requests. AverageWaitSeconds is nil when nothing
// has been resolved yet.
type GetStatsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewGetStatsUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsResult, error) {
	result := &GetStatsResult{}

	counts := []struct {
		status request.Status
		target *int64
	}{
		{request.StatusPending, &result.Pending},
		{request.StatusInProgress, &result.InProgress},
		{request.StatusResolved, &result.Resolved},
		{request.StatusCancelled, &result.Cancelled},
	}

	for _, c := range counts {
		count, err := uc.requestRepo.CountByStatus(ctx, c.status)
		if err != nil {
			uc.logger.Errorw("failed to count requests", "error", err, "status", c.status)
			return nil, errors.NewInternalError("failed to compute stats")
		}
		*c.target = count
		result.Total += count
	}

	avg, err := uc.requestRepo.AverageWaitSeconds(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute average wait", "error", err)
		return nil, errors.NewInternalError("failed to compute stats")
	}
	result.AverageWaitSeconds = avg

	return result, nil
}
