package story

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfmodel "dreamtale-api/internal/workflow/model"
)

func TestResolveNoOpKeepsEverything(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewEditResolver(gen)
	snap := snapshotFixture()

	d := r.Resolve(context.Background(), snap, &wfmodel.StoryEditRequest{})
	require.NotNil(t, d)
	assert.Equal(t, wfmodel.EditNoOp, d.Classification)
	assert.Equal(t, snap.Title, d.FinalTitle)
	assert.Equal(t, snap.Content, d.FinalContent)
	assert.False(t, d.RegenerationAttempted)
	assert.Zero(t, gen.calls)
}

func TestResolveContentEditUsesContentVerbatim(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewEditResolver(gen)
	snap := snapshotFixture()

	manual := "  my hand-written story, exactly as typed.  "
	d := r.Resolve(context.Background(), snap, &wfmodel.StoryEditRequest{
		Content: &manual,
	})

	assert.Equal(t, wfmodel.EditContent, d.Classification)
	assert.Equal(t, manual, d.FinalContent, "manual content must not be trimmed or rewritten")
	assert.Equal(t, snap.Title, d.FinalTitle)
	assert.Zero(t, gen.calls, "content edits never call the model")
}

func TestResolveContentEditWithExplicitTitle(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewEditResolver(gen)

	d := r.Resolve(context.Background(), snapshotFixture(), &wfmodel.StoryEditRequest{
		Content: strptr("new body"),
		Title:   strptr(`"New Title"`),
	})

	assert.Equal(t, wfmodel.EditContent, d.Classification)
	assert.Equal(t, "new body", d.FinalContent)
	assert.Equal(t, "New Title", d.FinalTitle)
}

func TestResolveTitleOnlyEdit(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewEditResolver(gen)
	snap := snapshotFixture()

	d := r.Resolve(context.Background(), snap, &wfmodel.StoryEditRequest{
		Title: strptr("  'The Wakeful Fox' "),
	})

	assert.Equal(t, wfmodel.EditTitleOnly, d.Classification)
	assert.Equal(t, "The Wakeful Fox", d.FinalTitle)
	assert.Equal(t, snap.Content, d.FinalContent)
	assert.Zero(t, gen.calls)
}

func TestResolveMetadataEditAdaptsContentAndTitle(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"the adapted story in french",
		"\"Le Renard Endormi\"",
	}}
	r := NewEditResolver(gen)
	snap := snapshotFixture()

	d := r.Resolve(context.Background(), snap, &wfmodel.StoryEditRequest{
		Language: strptr("fr"),
	})

	assert.Equal(t, wfmodel.EditMetadata, d.Classification)
	assert.True(t, d.RegenerationAttempted)
	assert.True(t, d.RegenerationSucceeded)
	assert.Equal(t, "the adapted story in french", d.FinalContent)
	assert.Equal(t, "Le Renard Endormi", d.FinalTitle)
	assert.Equal(t, 2, gen.calls)

	// 改编提示词要带上原文与新旧参数
	assert.Contains(t, gen.prompts[0], snap.Content)
	assert.Contains(t, gen.prompts[0], "French")
	// 标题提示词要以改编后的正文为依据
	assert.Contains(t, gen.prompts[1], "the adapted story in french")
}

func TestResolveMetadataEditExplicitTitleSkipsTitleCall(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"adapted body"}}
	r := NewEditResolver(gen)

	d := r.Resolve(context.Background(), snapshotFixture(), &wfmodel.StoryEditRequest{
		Language: strptr("fr"),
		Title:    strptr("Mon Titre"),
	})

	assert.Equal(t, 1, gen.calls, "explicit title needs no title generation")
	assert.Equal(t, "Mon Titre", d.FinalTitle)
	assert.Equal(t, "adapted body", d.FinalContent)
}

func TestResolveFallsBackWhenAdaptationFails(t *testing.T) {
	gen := &fakeGenerator{errAt: 1}
	r := NewEditResolver(gen)
	snap := snapshotFixture()

	d := r.Resolve(context.Background(), snap, &wfmodel.StoryEditRequest{
		Topic: strptr("space"),
	})

	assert.Equal(t, wfmodel.EditMetadata, d.Classification)
	assert.True(t, d.RegenerationAttempted)
	assert.False(t, d.RegenerationSucceeded)
	assert.Equal(t, snap.Title, d.FinalTitle)
	assert.Equal(t, snap.Content, d.FinalContent, "fallback must keep the original content")
}

func TestResolveFallsBackWhenTitleAdaptationFails(t *testing.T) {
	// 正文改编成功但标题失败：整体回退，不保留半成品
	gen := &fakeGenerator{responses: []string{"adapted body"}, errAt: 2}
	r := NewEditResolver(gen)
	snap := snapshotFixture()

	d := r.Resolve(context.Background(), snap, &wfmodel.StoryEditRequest{
		Topic: strptr("space"),
	})

	assert.False(t, d.RegenerationSucceeded)
	assert.Equal(t, snap.Content, d.FinalContent)
	assert.Equal(t, snap.Title, d.FinalTitle)
}

func TestResolveFallbackStillAppliesExplicitTitle(t *testing.T) {
	gen := &fakeGenerator{errAt: 1}
	r := NewEditResolver(gen)
	snap := snapshotFixture()

	d := r.Resolve(context.Background(), snap, &wfmodel.StoryEditRequest{
		Topic: strptr("space"),
		Title: strptr("Chosen Title"),
	})

	assert.False(t, d.RegenerationSucceeded)
	assert.Equal(t, "Chosen Title", d.FinalTitle, "user's explicit title survives the fallback")
	assert.Equal(t, snap.Content, d.FinalContent)
}

func TestResolveNilSnapshot(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewEditResolver(gen)

	d := r.Resolve(context.Background(), nil, &wfmodel.StoryEditRequest{Title: strptr("x")})
	require.NotNil(t, d)
	assert.Equal(t, wfmodel.EditNoOp, d.Classification)
	assert.Zero(t, gen.calls)
}
