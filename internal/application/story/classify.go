package story

import (
	"strings"

	wfmodel "dreamtale-api/internal/workflow/model"
)

// paramField 描述一个可比较的生成参数字段：
// incoming 取请求中的指针（nil 表示未提供），original 取快照中的原值。
type paramField struct {
	name     string
	incoming func(*wfmodel.StoryEditRequest) *string
	original func(*wfmodel.StoryParams) string
}

// paramFields 参与元数据对比的字段；请求中未提供的字段永远不算变更。
var paramFields = []paramField{
	{"age_group", func(r *wfmodel.StoryEditRequest) *string { return r.AgeGroup }, func(p *wfmodel.StoryParams) string { return p.AgeGroup }},
	{"language", func(r *wfmodel.StoryEditRequest) *string { return r.Language }, func(p *wfmodel.StoryParams) string { return p.Language }},
	{"topic", func(r *wfmodel.StoryEditRequest) *string { return r.Topic }, func(p *wfmodel.StoryParams) string { return p.Topic }},
	{"subtopic", func(r *wfmodel.StoryEditRequest) *string { return r.Subtopic }, func(p *wfmodel.StoryParams) string { return p.Subtopic }},
	{"style", func(r *wfmodel.StoryEditRequest) *string { return r.Style }, func(p *wfmodel.StoryParams) string { return p.Style }},
	{"first_name", func(r *wfmodel.StoryEditRequest) *string { return r.FirstName }, func(p *wfmodel.StoryParams) string { return p.FirstName }},
	{"gender", func(r *wfmodel.StoryEditRequest) *string { return r.Gender }, func(p *wfmodel.StoryParams) string { return p.Gender }},
}

// Classify 对比原始快照与增量请求，给出编辑分类与变更字段列表。
//
// 分类优先级（内容优先于元数据）：
//  1. 正文被手工修改      -> content_edit
//  2. 任一生成参数变化    -> metadata_edit
//  3. 仅标题变化          -> title_only_edit
//  4. 其余                -> no_op
//
// 人工改写的正文是权威版本，绝不允许被自动改编悄悄覆盖，
// 即使同一请求里元数据也变了。
func Classify(snapshot *wfmodel.StorySnapshot, req *wfmodel.StoryEditRequest) (wfmodel.EditClassification, []string) {
	if snapshot == nil || req == nil {
		return wfmodel.EditNoOp, nil
	}

	var changed []string

	contentChanged := req.Content != nil &&
		strings.TrimSpace(*req.Content) != strings.TrimSpace(snapshot.Content)
	if contentChanged {
		changed = append(changed, "content")
	}

	metadataChanged := false
	for _, f := range paramFields {
		v := f.incoming(req)
		if v == nil {
			continue
		}
		if strings.TrimSpace(*v) != strings.TrimSpace(f.original(&snapshot.Params)) {
			metadataChanged = true
			changed = append(changed, f.name)
		}
	}

	titleChanged := req.Title != nil &&
		strings.TrimSpace(*req.Title) != strings.TrimSpace(snapshot.Title)
	if titleChanged {
		changed = append(changed, "title")
	}

	switch {
	case contentChanged:
		return wfmodel.EditContent, changed
	case metadataChanged:
		return wfmodel.EditMetadata, changed
	case titleChanged:
		return wfmodel.EditTitleOnly, changed
	default:
		return wfmodel.EditNoOp, nil
	}
}
