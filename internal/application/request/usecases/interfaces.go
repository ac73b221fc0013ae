package usecases

import (
	"context"

	"labdesk/internal/application/request/dto"
)

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type ClaimRequestExecutor interface {
	Execute(ctx context.Context, cmd ClaimRequestCommand) (*ClaimRequestResult, error)
}

type ResolveRequestExecutor interface {
	Execute(ctx context.Context, cmd ResolveRequestCommand) (*ResolveRequestResult, error)
}

type ReleaseRequestExecutor interface {
	Execute(ctx context.Context, cmd ReleaseRequestCommand) (*ReleaseRequestResult, error)
}

type CancelRequestExecutor interface {
	Execute(ctx context.Context, cmd CancelRequestCommand) (*CancelRequestResult, error)
}

type ReprioritizeRequestExecutor interface {
	Execute(ctx context.Context, cmd ReprioritizeRequestCommand) (*ReprioritizeRequestResult, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

type ListMyRequestsExecutor interface {
	Execute(ctx context.Context, query ListMyRequestsQuery) (*ListMyRequestsResult, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*GetStatsResult, error)
}
