package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeParams(t *testing.T) {
	base := StoryParams{
		Title:    "Old Title",
		AgeGroup: "4-6",
		Language: "en",
		Topic:    "animals",
		Subtopic: "forest friends",
		Style:    "gentle",
	}

	lang := " fr "
	name := "Luna"
	req := &StoryEditRequest{
		Language:  &lang,
		FirstName: &name,
	}

	merged := req.MergeParams(base)

	assert.Equal(t, "fr", merged.Language, "provided fields override and are trimmed")
	assert.Equal(t, "Luna", merged.FirstName)
	assert.Equal(t, "animals", merged.Topic, "absent fields keep the base value")
	assert.Equal(t, "Old Title", merged.Title)

	// 原参数不被修改
	assert.Equal(t, "en", base.Language)
}

func TestMergeParamsNilRequest(t *testing.T) {
	base := StoryParams{Topic: "animals"}
	var req *StoryEditRequest
	assert.Equal(t, base, req.MergeParams(base))
}
