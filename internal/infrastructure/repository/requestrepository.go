package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"labdesk/internal/domain/request"
	"labdesk/internal/infrastructure/persistence/mappers"
	"labdesk/internal/infrastructure/persistence/models"
	db "labdesk/internal/shared/db"
)

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(database *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     database,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	return nil
}

// Update writes the aggregate back with a compare-and-swap on the version
// column. Every successful domain mutation bumps the version, so a zero
// RowsAffected can only mean the row is gone or someone else won the race.
func (r *RequestRepository) Update(ctx context.Context, req *request.Request, expectedVersion int64) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"assignee_id": model.AssigneeID,
			"metadata":    model.Metadata,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
			"resolved_at": model.ResolvedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.RequestModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check request existence: %w", err)
		}
		if count == 0 {
			return request.ErrNotFound
		}
		return request.ErrVersionConflict
	}

	return nil
}

// Delete removes the request and its reply thread in one transaction.
func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).Delete(&models.ReplyModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete replies: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.RequestModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return request.ErrNotFound
		}
		return nil
	})
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, request.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	switch filter.Sort {
	case request.SortNewest:
		query = query.Order("created_at DESC")
	default:
		// Queue order: lower priority first, ties broken first-come-first-served.
		query = query.Order("priority ASC, created_at ASC")
	}

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize).Offset(filter.Page * filter.PageSize)
	}

	var requestModels []models.RequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	requests := make([]*request.Request, len(requestModels))
	for i := range requestModels {
		req, err := r.mapper.ToDomain(&requestModels[i])
		if err != nil {
			return nil, 0, err
		}
		requests[i] = req
	}

	return requests, total, nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.RequestModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}

	return count, nil
}

// AverageWaitSeconds returns the mean resolution time of resolved requests,
// or nil when nothing has been resolved yet.
func (r *RequestRepository) AverageWaitSeconds(ctx context.Context) (*float64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var avg sql.NullFloat64
	row := tx.Model(&models.RequestModel{}).
		Where("resolved_at IS NOT NULL").
		Select("AVG((resolved_at - created_at) / 1000.0)").
		Row()

	if err := row.Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to compute average wait: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}

	return &avg.Float64, nil
}
