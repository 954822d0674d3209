// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoryStatus 故事状态
type StoryStatus string

const (
	StoryStatusGenerating StoryStatus = "generating"
	StoryStatusReady      StoryStatus = "ready"
	StoryStatusFailed     StoryStatus = "failed"
)

// Story 故事实体：一次生成的完整产物及其生效参数。
// Characters/Scenes 保留流水线中间产物，便于追溯与改编。
type Story struct {
	ID         string      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string      `json:"user_id" gorm:"type:uuid;index;not null"`
	Title      string      `json:"title" gorm:"type:varchar(255)"`
	Characters string      `json:"characters,omitempty" gorm:"type:text"`
	Scenes     string      `json:"scenes,omitempty" gorm:"type:text"`
	Content    string      `json:"content,omitempty" gorm:"type:text"`
	FirstName  string      `json:"first_name,omitempty" gorm:"type:varchar(100)"`
	Gender     string      `json:"gender,omitempty" gorm:"type:varchar(32)"`
	AgeGroup   string      `json:"age_group" gorm:"type:varchar(32);not null"`
	Language   string      `json:"language" gorm:"type:varchar(16);not null"`
	Topic      string      `json:"topic" gorm:"type:varchar(100);not null"`
	Subtopic   string      `json:"subtopic" gorm:"type:varchar(100);not null"`
	Style      string      `json:"style" gorm:"type:varchar(100);not null"`
	WordCount  int         `json:"word_count" gorm:"default:0"`
	Status     StoryStatus `json:"status" gorm:"type:varchar(32);default:'generating'"`
	Version    int         `json:"version" gorm:"default:1"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Story) TableName() string {
	return "stories"
}

// NewStory 创建新故事
func NewStory(userID string) *Story {
	now := time.Now()
	return &Story{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StoryStatusGenerating,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetContent 设置正文并更新字数
func (s *Story) SetContent(content string) {
	s.Content = content
	s.WordCount = len([]rune(content))
	s.UpdatedAt = time.Now()
}

// IsReady 检查故事是否生成完毕
func (s *Story) IsReady() bool {
	return s.Status == StoryStatusReady
}

// IncrementVersion 增加版本号
func (s *Story) IncrementVersion() {
	s.Version++
	s.UpdatedAt = time.Now()
}
