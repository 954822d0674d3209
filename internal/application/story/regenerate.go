package story

import (
	"context"
	"time"

	llmctx "dreamtale-api/internal/domain/service"
	wfmodel "dreamtale-api/internal/workflow/model"
	workflowport "dreamtale-api/internal/workflow/port"
	"dreamtale-api/internal/workflow/prompt"
	"dreamtale-api/pkg/logger"
	"dreamtale-api/pkg/metrics"
)

// EditResolver 编辑解析器：根据编辑分类决定最终标题与正文。
// Resolve 永不返回错误——改编失败时回退到原始内容，编辑本身仍然成功。
type EditResolver struct {
	gen workflowport.TextGenerator
}

// NewEditResolver 创建编辑解析器
func NewEditResolver(gen workflowport.TextGenerator) *EditResolver {
	return &EditResolver{gen: gen}
}

// adaptOutcome 一次改编尝试的完整结果；content 与 title 要么都生效要么都弃用。
type adaptOutcome struct {
	content string
	title   string
	err     error
}

// Resolve 解析一次编辑请求。
//
// 各分类的处理：
//   - no_op:           原样保留标题与正文
//   - content_edit:    采用请求正文原文（不做裁剪规整），零次生成调用
//   - title_only_edit: 仅替换标题（规整后），正文不动
//   - metadata_edit:   按新参数改编正文与标题；失败时整体回退原文
//
// 显式提供的标题始终优先于改编产出的标题。
func (r *EditResolver) Resolve(ctx context.Context, snapshot *wfmodel.StorySnapshot, req *wfmodel.StoryEditRequest) *wfmodel.EditDecision {
	ctx, span := tracer.Start(ctx, "story.Resolve")
	defer span.End()
	ctx = llmctx.WithWorkflow(ctx, "story_edit")

	if snapshot == nil {
		return &wfmodel.EditDecision{Classification: wfmodel.EditNoOp}
	}

	classification, changed := Classify(snapshot, req)
	metrics.StoryEditTotal.WithLabelValues(string(classification)).Inc()

	decision := &wfmodel.EditDecision{
		Classification: classification,
		FinalTitle:     snapshot.Title,
		FinalContent:   snapshot.Content,
		ChangedFields:  changed,
	}

	explicitTitle := ""
	if req != nil && req.Title != nil {
		explicitTitle = NormalizeTitle(*req.Title)
	}

	switch classification {
	case wfmodel.EditNoOp:
		return decision

	case wfmodel.EditContent:
		// 人工正文是权威版本，逐字保留
		decision.FinalContent = *req.Content
		if explicitTitle != "" {
			decision.FinalTitle = explicitTitle
		}
		return decision

	case wfmodel.EditTitleOnly:
		decision.FinalTitle = explicitTitle
		return decision
	}

	// metadata_edit：尝试整体改编
	decision.RegenerationAttempted = true
	merged := req.MergeParams(snapshot.Params)

	outcome := r.adapt(ctx, snapshot, &merged, explicitTitle)
	if outcome.err != nil {
		metrics.StoryRegenerationFallbackTotal.Inc()
		logger.Warn(ctx, "story adaptation failed, keeping original content",
			"changed_fields", changed,
			"error", outcome.err.Error(),
		)
		if explicitTitle != "" {
			decision.FinalTitle = explicitTitle
		}
		return decision
	}

	decision.RegenerationSucceeded = true
	decision.FinalContent = outcome.content
	decision.FinalTitle = outcome.title
	return decision
}

// adapt 依新参数改编正文，必要时连带改编标题。
// explicitTitle 非空时不再生成标题，直接采用。
func (r *EditResolver) adapt(ctx context.Context, snapshot *wfmodel.StorySnapshot, merged *wfmodel.StoryParams, explicitTitle string) adaptOutcome {
	start := time.Now()

	content, err := r.gen.Generate(ctx, prompt.ComposeAdaptationPrompt(snapshot.Title, snapshot.Content, &snapshot.Params, merged))
	if err != nil {
		return adaptOutcome{err: err}
	}

	title := explicitTitle
	if title == "" {
		raw, err := r.gen.Generate(ctx, prompt.ComposeAdaptedTitlePrompt(snapshot.Title, content, merged))
		if err != nil {
			// 标题失败同样整体回退：不允许新正文配旧标题的半成品状态
			return adaptOutcome{err: err}
		}
		title = NormalizeTitle(raw)
	}

	logger.Info(ctx, "story adapted",
		"title", title,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return adaptOutcome{content: content, title: title}
}
