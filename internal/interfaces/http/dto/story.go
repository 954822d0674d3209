// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"dreamtale-api/internal/domain/entity"
	wfmodel "dreamtale-api/internal/workflow/model"
)

// CreateStoryRequest 创建故事请求
type CreateStoryRequest struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Gender    string `json:"gender,omitempty"`
	AgeGroup  string `json:"age_group" binding:"required"`
	Language  string `json:"language" binding:"required"`
	Topic     string `json:"topic" binding:"required"`
	Subtopic  string `json:"subtopic" binding:"required"`
	Style     string `json:"style" binding:"required"`
}

// ToParams 转换为生成参数
func (r *CreateStoryRequest) ToParams() wfmodel.StoryParams {
	return wfmodel.StoryParams{
		Title:     r.Title,
		FirstName: r.FirstName,
		Gender:    r.Gender,
		AgeGroup:  r.AgeGroup,
		Language:  r.Language,
		Topic:     r.Topic,
		Subtopic:  r.Subtopic,
		Style:     r.Style,
	}
}

// UpdateStoryRequest 更新故事请求；未提供的字段保持原值。
type UpdateStoryRequest struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	AgeGroup  *string `json:"age_group,omitempty"`
	Language  *string `json:"language,omitempty"`
	Topic     *string `json:"topic,omitempty"`
	Subtopic  *string `json:"subtopic,omitempty"`
	Style     *string `json:"style,omitempty"`
}

// ToEditRequest 转换为编辑请求
func (r *UpdateStoryRequest) ToEditRequest() *wfmodel.StoryEditRequest {
	return &wfmodel.StoryEditRequest{
		Title:     r.Title,
		Content:   r.Content,
		FirstName: r.FirstName,
		Gender:    r.Gender,
		AgeGroup:  r.AgeGroup,
		Language:  r.Language,
		Topic:     r.Topic,
		Subtopic:  r.Subtopic,
		Style:     r.Style,
	}
}

// StoryDTO 故事响应
type StoryDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	AgeGroup  string    `json:"age_group"`
	Language  string    `json:"language"`
	Topic     string    `json:"topic"`
	Subtopic  string    `json:"subtopic"`
	Style     string    `json:"style"`
	WordCount int       `json:"word_count"`
	Status    string    `json:"status"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoryEditResultDTO 编辑结果响应：故事终态加本次编辑的处理信息。
type StoryEditResultDTO struct {
	Story                 *StoryDTO `json:"story"`
	Classification        string    `json:"classification"`
	ChangedFields         []string  `json:"changed_fields,omitempty"`
	RegenerationAttempted bool      `json:"regeneration_attempted"`
	RegenerationSucceeded bool      `json:"regeneration_succeeded"`
}

// RevisionDTO 修订记录响应
type RevisionDTO struct {
	ID                    string    `json:"id"`
	StoryID               string    `json:"story_id"`
	Version               int       `json:"version"`
	Classification        string    `json:"classification"`
	ChangedFields         []string  `json:"changed_fields,omitempty"`
	Title                 string    `json:"title"`
	RegenerationAttempted bool      `json:"regeneration_attempted"`
	RegenerationSucceeded bool      `json:"regeneration_succeeded"`
	CreatedAt             time.Time `json:"created_at"`
}

// ToStoryDTO 转换故事实体为响应对象
func ToStoryDTO(s *entity.Story) *StoryDTO {
	if s == nil {
		return nil
	}
	return &StoryDTO{
		ID:        s.ID,
		Title:     s.Title,
		Content:   s.Content,
		FirstName: s.FirstName,
		Gender:    s.Gender,
		AgeGroup:  s.AgeGroup,
		Language:  s.Language,
		Topic:     s.Topic,
		Subtopic:  s.Subtopic,
		Style:     s.Style,
		WordCount: s.WordCount,
		Status:    string(s.Status),
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStoryDTOs 批量转换
func ToStoryDTOs(stories []*entity.Story) []*StoryDTO {
	out := make([]*StoryDTO, 0, len(stories))
	for _, s := range stories {
		out = append(out, ToStoryDTO(s))
	}
	return out
}

// ToRevisionDTO 转换修订实体为响应对象
func ToRevisionDTO(r *entity.StoryRevision) *RevisionDTO {
	if r == nil {
		return nil
	}
	return &RevisionDTO{
		ID:                    r.ID,
		StoryID:               r.StoryID,
		Version:               r.Version,
		Classification:        r.Classification,
		ChangedFields:         r.ChangedFields,
		Title:                 r.Title,
		RegenerationAttempted: r.RegenerationAttempted,
		RegenerationSucceeded: r.RegenerationSucceeded,
		CreatedAt:             r.CreatedAt,
	}
}

// ToRevisionDTOs 批量转换
func ToRevisionDTOs(revisions []*entity.StoryRevision) []*RevisionDTO {
	out := make([]*RevisionDTO, 0, len(revisions))
	for _, r := range revisions {
		out = append(out, ToRevisionDTO(r))
	}
	return out
}
