package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"labdesk/internal/domain/request"
	"labdesk/internal/infrastructure/persistence/mappers"
	"labdesk/internal/infrastructure/persistence/models"
	db "labdesk/internal/shared/db"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewReplyRepository(database *gorm.DB) *ReplyRepository {
	return &ReplyRepository{
		db:     database,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *ReplyRepository) Append(ctx context.Context, reply *request.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append reply: %w", err)
	}

	return nil
}

func (r *ReplyRepository) ListByRequest(ctx context.Context, requestID string) ([]*request.Reply, error) {
	var replyModels []models.ReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&replyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	return r.toDomainSlice(replyModels)
}

// ListPageByRequest returns one page of the thread, newest first. Page is
// zero-based.
func (r *ReplyRepository) ListPageByRequest(ctx context.Context, requestID string, page, pageSize int) ([]*request.Reply, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ReplyModel{}).Where("request_id = ?", requestID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count replies: %w", err)
	}

	var replyModels []models.ReplyModel
	if err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&replyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list replies: %w", err)
	}

	replies, err := r.toDomainSlice(replyModels)
	if err != nil {
		return nil, 0, err
	}

	return replies, total, nil
}

func (r *ReplyRepository) CountByRequest(ctx context.Context, requestID string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ReplyModel{}).
		Where("request_id = ?", requestID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count replies: %w", err)
	}

	return count, nil
}

func (r *ReplyRepository) toDomainSlice(replyModels []models.ReplyModel) ([]*request.Reply, error) {
	replies := make([]*request.Reply, len(replyModels))
	for i := range replyModels {
		reply, err := r.mapper.ReplyToDomain(&replyModels[i])
		if err != nil {
			return nil, err
		}
		replies[i] = reply
	}
	return replies, nil
}
