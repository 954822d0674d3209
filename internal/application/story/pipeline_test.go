package story

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfmodel "dreamtale-api/internal/workflow/model"
	apperrors "dreamtale-api/pkg/errors"
)

// fakeGenerator 记录收到的提示词，按调用次序返回预设回复。
type fakeGenerator struct {
	prompts   []string
	responses []string
	errAt     int // 第几次调用返回错误，0 表示从不
	calls     int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.errAt == f.calls {
		return "", errors.New("model unavailable")
	}
	if len(f.responses) >= f.calls {
		return f.responses[f.calls-1], nil
	}
	return "generated text", nil
}

func validParams() wfmodel.StoryParams {
	return wfmodel.StoryParams{
		AgeGroup: "4-6",
		Language: "en",
		Topic:    "animals",
		Subtopic: "forest friends",
		Style:    "gentle",
	}
}

func TestGenerateRunsStagesInOrder(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"a fox and an owl",
		"scene one, scene two",
		"\"The Sleepy Fox\"",
		"once upon a time...",
	}}
	g := NewGenerator(gen)

	bundle, err := g.Generate(context.Background(), validParams())
	require.NoError(t, err)
	require.Equal(t, 4, gen.calls)

	assert.Equal(t, "a fox and an owl", bundle.Characters)
	assert.Equal(t, "scene one, scene two", bundle.Scenes)
	assert.Equal(t, "The Sleepy Fox", bundle.Title, "model title should be stripped of quotes")
	assert.Equal(t, "once upon a time...", bundle.Story)

	// 后续阶段要以前序产物为输入
	assert.Contains(t, gen.prompts[1], "a fox and an owl")
	assert.Contains(t, gen.prompts[2], "scene one, scene two")
	assert.Contains(t, gen.prompts[3], "The Sleepy Fox")

	require.Len(t, bundle.Stages, 4)
	assert.Equal(t, wfmodel.StageCharacters, bundle.Stages[0].Stage)
	assert.Equal(t, wfmodel.StageScenes, bundle.Stages[1].Stage)
	assert.Equal(t, wfmodel.StageTitle, bundle.Stages[2].Stage)
	assert.Equal(t, wfmodel.StageStory, bundle.Stages[3].Stage)
}

func TestGenerateSkipsTitleStageForUserTitle(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"characters",
		"scenes",
		"story body",
	}}
	g := NewGenerator(gen)

	params := validParams()
	params.Title = "  \"Luna's Big Nap\"  "

	bundle, err := g.Generate(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 3, gen.calls, "title stage should not call the model")
	assert.Equal(t, "Luna's Big Nap", bundle.Title)
	assert.Contains(t, gen.prompts[2], "Luna's Big Nap", "story prompt should use the user title")
	assert.Len(t, bundle.Stages, 3)
}

func TestGenerateRejectsMissingParams(t *testing.T) {
	gen := &fakeGenerator{}
	g := NewGenerator(gen)

	params := validParams()
	params.Topic = "   "

	bundle, err := g.Generate(context.Background(), params)
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.Zero(t, gen.calls, "validation must happen before any model call")

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)
}

func TestGenerateFailsFastOnStageError(t *testing.T) {
	gen := &fakeGenerator{errAt: 2}
	g := NewGenerator(gen)

	bundle, err := g.Generate(context.Background(), validParams())
	require.Error(t, err)
	assert.Nil(t, bundle, "no partial result on failure")
	assert.Equal(t, 2, gen.calls, "pipeline must stop at the failing stage")

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeGenerationFailed, appErr.Code)
	assert.Contains(t, appErr.Message, "scenes")
}
