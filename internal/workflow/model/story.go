// Package model 定义工作流层共享的数据结构
package model

import "strings"

// StoryParams 一次故事生成的完整参数集。
// AgeGroup/Language/Topic/Subtopic/Style 必填；Title/FirstName/Gender 为可选个性化字段。
type StoryParams struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Gender    string `json:"gender,omitempty"`
	AgeGroup  string `json:"age_group"`
	Language  string `json:"language"`
	Topic     string `json:"topic"`
	Subtopic  string `json:"subtopic"`
	Style     string `json:"style"`
}

// StageName 生成阶段名称
type StageName string

const (
	StageCharacters StageName = "characters"
	StageScenes     StageName = "scenes"
	StageTitle      StageName = "title"
	StageStory      StageName = "story"
)

// StageOutput 单个生成阶段的原始输出，生成后不可变。
type StageOutput struct {
	Stage StageName `json:"stage"`
	Text  string    `json:"text"`
}

// StoryBundle 流水线终态产物，所有权在返回后移交调用方。
type StoryBundle struct {
	Title      string        `json:"title"`
	Characters string        `json:"characters"`
	Scenes     string        `json:"scenes"`
	Story      string        `json:"story"`
	Params     StoryParams   `json:"params"`
	Stages     []StageOutput `json:"stages"`
}

// StorySnapshot 编辑路径使用的原始状态快照，单次请求内只读。
type StorySnapshot struct {
	Title   string      `json:"title"`
	Params  StoryParams `json:"params"`
	Content string      `json:"content"`
}

// StoryEditRequest 部分更新请求；nil 字段表示"未提供，沿用原值"。
type StoryEditRequest struct {
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

// MergeParams 以原参数为底，逐字段用请求中提供的值覆盖，返回生效的新参数集。
func (r *StoryEditRequest) MergeParams(base StoryParams) StoryParams {
	out := base
	if r == nil {
		return out
	}
	if r.Title != nil {
		out.Title = strings.TrimSpace(*r.Title)
	}
	if r.FirstName != nil {
		out.FirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.Gender != nil {
		out.Gender = strings.TrimSpace(*r.Gender)
	}
	if r.AgeGroup != nil {
		out.AgeGroup = strings.TrimSpace(*r.AgeGroup)
	}
	if r.Language != nil {
		out.Language = strings.TrimSpace(*r.Language)
	}
	if r.Topic != nil {
		out.Topic = strings.TrimSpace(*r.Topic)
	}
	if r.Subtopic != nil {
		out.Subtopic = strings.TrimSpace(*r.Subtopic)
	}
	if r.Style != nil {
		out.Style = strings.TrimSpace(*r.Style)
	}
	return out
}

// EditClassification 编辑分类
type EditClassification string

const (
	EditNoOp      EditClassification = "no_op"
	EditContent   EditClassification = "content_edit"
	EditMetadata  EditClassification = "metadata_edit"
	EditTitleOnly EditClassification = "title_only_edit"
)

// EditDecision 编辑解析结果，单次请求内计算，不独立持久化。
type EditDecision struct {
	Classification        EditClassification `json:"classification"`
	FinalTitle            string             `json:"final_title"`
	FinalContent          string             `json:"final_content"`
	ChangedFields         []string           `json:"changed_fields,omitempty"`
	RegenerationAttempted bool               `json:"regeneration_attempted"`
	RegenerationSucceeded bool               `json:"regeneration_succeeded"`
}
