package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wfmodel "dreamtale-api/internal/workflow/model"
)

func baseParams() *wfmodel.StoryParams {
	return &wfmodel.StoryParams{
		AgeGroup: "4-6",
		Language: "en",
		Topic:    "animals",
		Subtopic: "forest friends",
		Style:    "gentle",
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "French", LanguageName("fr"))
	assert.Equal(t, "Chinese", LanguageName(" ZH "))
	assert.Equal(t, "xx", LanguageName("xx"), "unknown codes pass through")
}

func TestComposeCharacterPrompt(t *testing.T) {
	got := ComposeCharacterPrompt(baseParams())

	assert.Contains(t, got, "aged 4-6")
	assert.Contains(t, got, "- Topic: animals")
	assert.Contains(t, got, "- Subtopic: forest friends")
	assert.Contains(t, got, "- Style: gentle")
	assert.Contains(t, got, "Write your answer in English.")
	assert.NotContains(t, got, "protagonist", "no persona clause without name or gender")
}

func TestComposeCharacterPromptPersona(t *testing.T) {
	p := baseParams()
	p.FirstName = "Luna"
	p.Gender = "girl"
	got := ComposeCharacterPrompt(p)
	assert.Contains(t, got, "a girl child named Luna")

	p.Gender = ""
	got = ComposeCharacterPrompt(p)
	assert.Contains(t, got, "a child named Luna")

	p.FirstName = ""
	p.Gender = "boy"
	got = ComposeCharacterPrompt(p)
	assert.Contains(t, got, "a boy child, written as the story's protagonist")
}

func TestComposeScenePromptEmbedsCharacters(t *testing.T) {
	got := ComposeScenePrompt(baseParams(), "Fennec the fox, Olive the owl")
	assert.Contains(t, got, "Fennec the fox, Olive the owl")
	assert.Contains(t, got, "soothing ending")
}

func TestComposeTitlePromptEmbedsPriorStages(t *testing.T) {
	got := ComposeTitlePrompt(baseParams(), "the characters", "the scenes")
	assert.Contains(t, got, "the characters")
	assert.Contains(t, got, "the scenes")
	assert.Contains(t, got, "Return only the title")
	assert.Contains(t, got, "Write it in English")
}

func TestComposeStoryPrompt(t *testing.T) {
	p := baseParams()
	p.FirstName = "Luna"
	got := ComposeStoryPrompt(p, "chars", "scenes", "The Sleepy Fox")

	assert.Contains(t, got, `titled "The Sleepy Fox"`)
	assert.Contains(t, got, "chars")
	assert.Contains(t, got, "scenes")
	assert.Contains(t, got, "Make Luna the protagonist")
	assert.Contains(t, got, "Return only the story text")
}

func TestComposeAdaptationPromptShowsBothParamSets(t *testing.T) {
	from := baseParams()
	to := baseParams()
	to.Language = "fr"
	to.Topic = "space"

	got := ComposeAdaptationPrompt("The Sleepy Fox", "original body", from, to)

	assert.Contains(t, got, "Original title: The Sleepy Fox")
	assert.Contains(t, got, "original body")
	assert.Contains(t, got, "- Topic: animals")
	assert.Contains(t, got, "- Topic: space")
	assert.Contains(t, got, "Write your answer in French.")
	assert.Contains(t, got, "Preserve the narrative structure")
}

func TestComposeAdaptedTitlePrompt(t *testing.T) {
	got := ComposeAdaptedTitlePrompt("The Sleepy Fox", "adapted body", baseParams())
	assert.Contains(t, got, "Original title: The Sleepy Fox")
	assert.Contains(t, got, "adapted body")
	assert.Contains(t, got, "do not invent an unrelated one")
	assert.Contains(t, got, "Return only the title")
}
