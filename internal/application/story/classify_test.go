package story

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wfmodel "dreamtale-api/internal/workflow/model"
)

func strptr(s string) *string { return &s }

func snapshotFixture() *wfmodel.StorySnapshot {
	return &wfmodel.StorySnapshot{
		Title:   "The Sleepy Fox",
		Content: "once upon a time the fox fell asleep.",
		Params: wfmodel.StoryParams{
			AgeGroup: "4-6",
			Language: "en",
			Topic:    "animals",
			Subtopic: "forest friends",
			Style:    "gentle",
		},
	}
}

func TestClassifyNoOp(t *testing.T) {
	snap := snapshotFixture()

	// 空请求
	cls, changed := Classify(snap, &wfmodel.StoryEditRequest{})
	assert.Equal(t, wfmodel.EditNoOp, cls)
	assert.Empty(t, changed)

	// 提交的值与原值相同
	cls, changed = Classify(snap, &wfmodel.StoryEditRequest{
		Title: strptr("The Sleepy Fox"),
		Topic: strptr("animals"),
	})
	assert.Equal(t, wfmodel.EditNoOp, cls)
	assert.Empty(t, changed)

	// 仅差首尾空白也不算变更
	cls, _ = Classify(snap, &wfmodel.StoryEditRequest{
		Content: strptr("  once upon a time the fox fell asleep.  "),
	})
	assert.Equal(t, wfmodel.EditNoOp, cls)
}

func TestClassifyContentEdit(t *testing.T) {
	cls, changed := Classify(snapshotFixture(), &wfmodel.StoryEditRequest{
		Content: strptr("a brand new story."),
	})
	assert.Equal(t, wfmodel.EditContent, cls)
	assert.Equal(t, []string{"content"}, changed)
}

func TestClassifyContentWinsOverMetadata(t *testing.T) {
	// 正文与参数同时改动：人工正文优先，但变更列表要完整
	cls, changed := Classify(snapshotFixture(), &wfmodel.StoryEditRequest{
		Content: strptr("a brand new story."),
		Topic:   strptr("space"),
		Title:   strptr("New Title"),
	})
	assert.Equal(t, wfmodel.EditContent, cls)
	assert.Equal(t, []string{"content", "topic", "title"}, changed)
}

func TestClassifyMetadataEdit(t *testing.T) {
	cls, changed := Classify(snapshotFixture(), &wfmodel.StoryEditRequest{
		Topic:    strptr("space"),
		Language: strptr("fr"),
	})
	assert.Equal(t, wfmodel.EditMetadata, cls)
	assert.ElementsMatch(t, []string{"language", "topic"}, changed)
}

func TestClassifyMetadataWinsOverTitle(t *testing.T) {
	cls, changed := Classify(snapshotFixture(), &wfmodel.StoryEditRequest{
		Title: strptr("New Title"),
		Style: strptr("adventurous"),
	})
	assert.Equal(t, wfmodel.EditMetadata, cls)
	assert.ElementsMatch(t, []string{"style", "title"}, changed)
}

func TestClassifyTitleOnly(t *testing.T) {
	cls, changed := Classify(snapshotFixture(), &wfmodel.StoryEditRequest{
		Title: strptr("The Wakeful Fox"),
	})
	assert.Equal(t, wfmodel.EditTitleOnly, cls)
	assert.Equal(t, []string{"title"}, changed)
}

func TestClassifyNilInputs(t *testing.T) {
	cls, changed := Classify(nil, &wfmodel.StoryEditRequest{Title: strptr("x")})
	assert.Equal(t, wfmodel.EditNoOp, cls)
	assert.Nil(t, changed)

	cls, changed = Classify(snapshotFixture(), nil)
	assert.Equal(t, wfmodel.EditNoOp, cls)
	assert.Nil(t, changed)
}
