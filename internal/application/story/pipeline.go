// Package story 实现故事生成流水线与编辑解析的应用层逻辑。
package story

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	llmctx "dreamtale-api/internal/domain/service"
	wfmodel "dreamtale-api/internal/workflow/model"
	workflowport "dreamtale-api/internal/workflow/port"
	"dreamtale-api/internal/workflow/prompt"
	"dreamtale-api/pkg/errors"
	"dreamtale-api/pkg/logger"
	"dreamtale-api/pkg/metrics"
)

var tracer = otel.Tracer("story")

// Generator 故事生成流水线：角色 -> 场景 -> 标题 -> 正文，顺序执行。
// 任一阶段失败即整体失败，不产出部分结果。
type Generator struct {
	gen workflowport.TextGenerator
}

// NewGenerator 创建故事生成器
func NewGenerator(gen workflowport.TextGenerator) *Generator {
	return &Generator{gen: gen}
}

// stageContext 流水线累积状态；每个阶段只追加，不回写已有字段。
type stageContext struct {
	params     *wfmodel.StoryParams
	characters string
	scenes     string
	title      string
	stages     []wfmodel.StageOutput
}

// stageFunc 单个阶段：组装提示词、调用生成器、写回累积状态。
type stageFunc struct {
	name wfmodel.StageName
	run  func(ctx context.Context, sc *stageContext) (string, error)
}

// Generate 执行完整流水线并返回终态产物。
// params.Title 非空时跳过标题阶段，直接采用用户标题（仍会规整）。
func (g *Generator) Generate(ctx context.Context, params wfmodel.StoryParams) (*wfmodel.StoryBundle, error) {
	ctx, span := tracer.Start(ctx, "story.Generate")
	defer span.End()
	ctx = llmctx.WithWorkflow(ctx, "story_generation")

	if err := validateParams(&params); err != nil {
		metrics.StoryGenerationTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	start := time.Now()
	sc := &stageContext{params: &params}

	stages := []stageFunc{
		{wfmodel.StageCharacters, func(ctx context.Context, sc *stageContext) (string, error) {
			return g.gen.Generate(ctx, prompt.ComposeCharacterPrompt(sc.params))
		}},
		{wfmodel.StageScenes, func(ctx context.Context, sc *stageContext) (string, error) {
			return g.gen.Generate(ctx, prompt.ComposeScenePrompt(sc.params, sc.characters))
		}},
		{wfmodel.StageTitle, func(ctx context.Context, sc *stageContext) (string, error) {
			return g.gen.Generate(ctx, prompt.ComposeTitlePrompt(sc.params, sc.characters, sc.scenes))
		}},
		{wfmodel.StageStory, func(ctx context.Context, sc *stageContext) (string, error) {
			return g.gen.Generate(ctx, prompt.ComposeStoryPrompt(sc.params, sc.characters, sc.scenes, sc.title))
		}},
	}

	userTitle := NormalizeTitle(params.Title)

	var story string
	for _, st := range stages {
		if st.name == wfmodel.StageTitle && userTitle != "" {
			// 用户已命名，跳过标题生成
			sc.title = userTitle
			continue
		}

		text, err := g.runStage(ctx, st, sc)
		if err != nil {
			metrics.StoryGenerationTotal.WithLabelValues("failed").Inc()
			logger.Error(ctx, "story stage failed", err, "stage", string(st.name))
			return nil, errors.Wrap(err, errors.CodeGenerationFailed, "stage "+string(st.name)+" failed")
		}

		switch st.name {
		case wfmodel.StageCharacters:
			sc.characters = text
		case wfmodel.StageScenes:
			sc.scenes = text
		case wfmodel.StageTitle:
			sc.title = NormalizeTitle(text)
		case wfmodel.StageStory:
			story = text
		}
	}

	bundle := &wfmodel.StoryBundle{
		Title:      sc.title,
		Characters: sc.characters,
		Scenes:     sc.scenes,
		Story:      story,
		Params:     params,
		Stages:     sc.stages,
	}

	metrics.StoryGenerationTotal.WithLabelValues("success").Inc()
	metrics.StoryGenerationDuration.Observe(time.Since(start).Seconds())
	metrics.StoryWordCount.Observe(float64(len(strings.Fields(story))))
	logger.Info(ctx, "story generated",
		"title", bundle.Title,
		"stages", len(sc.stages),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return bundle, nil
}

// runStage 执行单个阶段并记录阶段产物与耗时。
func (g *Generator) runStage(ctx context.Context, st stageFunc, sc *stageContext) (string, error) {
	ctx, span := tracer.Start(ctx, "story.stage."+string(st.name))
	defer span.End()
	span.SetAttributes(attribute.String("story.stage", string(st.name)))

	start := time.Now()
	text, err := st.run(ctx, sc)
	metrics.StoryStageDuration.WithLabelValues(string(st.name)).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	sc.stages = append(sc.stages, wfmodel.StageOutput{Stage: st.name, Text: text})
	return text, nil
}

// validateParams 校验必填参数
func validateParams(p *wfmodel.StoryParams) error {
	required := []struct {
		name  string
		value string
	}{
		{"age_group", p.AgeGroup},
		{"language", p.Language},
		{"topic", p.Topic},
		{"subtopic", p.Subtopic},
		{"style", p.Style},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return errors.New(errors.CodeInvalidParam, "missing required parameter: "+f.name)
		}
	}
	return nil
}
