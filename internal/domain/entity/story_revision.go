// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/lib/pq"
)

// StoryRevision 故事修订记录：每次编辑落库一条，保留编辑前后的可追溯信息。
type StoryRevision struct {
	ID                    string         `json:"id" gorm:"type:uuid;primaryKey"`
	StoryID               string         `json:"story_id" gorm:"type:uuid;index;not null"`
	Version               int            `json:"version" gorm:"not null"`
	Classification        string         `json:"classification" gorm:"type:varchar(32);not null"`
	ChangedFields         pq.StringArray `json:"changed_fields,omitempty" gorm:"type:text[]"`
	Title                 string         `json:"title" gorm:"type:varchar(255)"`
	Content               string         `json:"content,omitempty" gorm:"type:text"`
	RegenerationAttempted bool           `json:"regeneration_attempted" gorm:"default:false"`
	RegenerationSucceeded bool           `json:"regeneration_succeeded" gorm:"default:false"`
	EditedBy              string         `json:"edited_by,omitempty" gorm:"type:uuid;index"`
	CreatedAt             time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (StoryRevision) TableName() string {
	return "story_revisions"
}
