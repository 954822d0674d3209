// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dreamtale-api/internal/domain/entity"
	"dreamtale-api/internal/domain/repository"
)

// StoryRevisionRepository 故事修订仓储实现
type StoryRevisionRepository struct {
	client *Client
}

// NewStoryRevisionRepository 创建故事修订仓储
func NewStoryRevisionRepository(client *Client) *StoryRevisionRepository {
	return &StoryRevisionRepository{client: client}
}

// Create 创建修订记录
func (r *StoryRevisionRepository) Create(ctx context.Context, revision *entity.StoryRevision) error {
	ctx, span := tracer.Start(ctx, "postgres.StoryRevisionRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(revision).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create story revision: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取修订记录
func (r *StoryRevisionRepository) GetByID(ctx context.Context, id string) (*entity.StoryRevision, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoryRevisionRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var revision entity.StoryRevision
	if err := db.First(&revision, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get story revision: %w", err)
	}
	return &revision, nil
}

// ListByStory 获取故事的修订历史（按版本倒序）
func (r *StoryRevisionRepository) ListByStory(ctx context.Context, storyID string, pagination repository.Pagination) (*repository.PagedResult[*entity.StoryRevision], error) {
	ctx, span := tracer.Start(ctx, "postgres.StoryRevisionRepository.ListByStory")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.StoryRevision{}).Where("story_id = ?", storyID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count story revisions: %w", err)
	}

	var revisions []*entity.StoryRevision
	if err := query.Order("version DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&revisions).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list story revisions: %w", err)
	}

	return repository.NewPagedResult(revisions, total, pagination), nil
}

// GetByStoryAndVersion 根据故事与版本号获取修订
func (r *StoryRevisionRepository) GetByStoryAndVersion(ctx context.Context, storyID string, version int) (*entity.StoryRevision, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoryRevisionRepository.GetByStoryAndVersion")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var revision entity.StoryRevision
	if err := db.First(&revision, "story_id = ? AND version = ?", storyID, version).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get story revision by version: %w", err)
	}
	return &revision, nil
}
