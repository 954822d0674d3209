// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"dreamtale-api/internal/domain/entity"
)

// StoryRevisionRepository 故事修订仓储接口
type StoryRevisionRepository interface {
	// Create 创建修订记录
	Create(ctx context.Context, revision *entity.StoryRevision) error

	// GetByID 根据 ID 获取修订记录
	GetByID(ctx context.Context, id string) (*entity.StoryRevision, error)

	// ListByStory 获取故事的修订历史（按版本倒序）
	ListByStory(ctx context.Context, storyID string, pagination Pagination) (*PagedResult[*entity.StoryRevision], error)

	// GetByStoryAndVersion 根据故事与版本号获取修订
	GetByStoryAndVersion(ctx context.Context, storyID string, version int) (*entity.StoryRevision, error)
}
