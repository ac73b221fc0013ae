package usecases

import (
	"context"

	"labdesk/internal/application/request/dto"
	"labdesk/internal/domain/request"
	"labdesk/internal/shared/constants"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
)

type ListRequestsQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ListRequestsResult struct {
	Requests []*dto.RequestDTO `json:"requests"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ListRequestsUseCase serves the queue view: priority ascending, creation
// time ascending, so equal priorities come out first-come-first-served.
type ListRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(
	ctx context.Context,
	query ListRequestsQuery,
) (*ListRequestsResult, error) {
	if err := validatePageBounds(query.Page, query.PageSize); err != nil {
		return nil, err
	}

	filter := request.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Sort:     request.SortQueue,
	}

	if query.Status != "" {
		status, err := request.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewInvalidArgumentError(err.Error())
		}
		filter.Status = &status
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, errors.NewInternalError("failed to list requests")
	}

	return &ListRequestsResult{
		Requests: dto.ToRequestDTOs(requests),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// validatePageBounds enforces the shared pagination contract: zero-based
// page, page size between 1 and the maximum.
func validatePageBounds(page, pageSize int) error {
	if page < 0 {
		return errors.NewInvalidArgumentError("page must be non-negative")
	}
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		return errors.NewInvalidArgumentError("page size must be between 1 and 100")
	}
	return nil
}
