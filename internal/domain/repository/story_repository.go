// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"dreamtale-api/internal/domain/entity"
)

// StoryFilter 故事过滤条件
type StoryFilter struct {
	Status   entity.StoryStatus
	Language string
	Topic    string
}

// StoryRepository 故事仓储接口
type StoryRepository interface {
	// Create 创建故事
	Create(ctx context.Context, story *entity.Story) error

	// GetByID 根据 ID 获取故事
	GetByID(ctx context.Context, id string) (*entity.Story, error)

	// GetByIDForUser 根据 ID 获取故事并校验归属
	GetByIDForUser(ctx context.Context, id, userID string) (*entity.Story, error)

	// Update 更新故事
	Update(ctx context.Context, story *entity.Story) error

	// Delete 删除故事
	Delete(ctx context.Context, id string) error

	// ListByUser 获取用户故事列表
	ListByUser(ctx context.Context, userID string, filter *StoryFilter, pagination Pagination) (*PagedResult[*entity.Story], error)

	// UpdateStatus 更新故事状态
	UpdateStatus(ctx context.Context, id string, status entity.StoryStatus) error
}
