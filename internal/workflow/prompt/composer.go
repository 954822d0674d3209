// Package prompt 提供各生成阶段的提示词组装。
// 所有函数都是纯字符串构建：无网络、无随机性；入参校验是调用方的职责。
package prompt

import (
	"fmt"
	"strings"

	wfmodel "dreamtale-api/internal/workflow/model"
)

// ComposeCharacterPrompt 组装角色设计阶段的提示词。
func ComposeCharacterPrompt(p *wfmodel.StoryParams) string {
	var b strings.Builder
	b.WriteString("You are designing the cast for a bedtime story for children aged ")
	b.WriteString(strings.TrimSpace(p.AgeGroup))
	b.WriteString(".\n\n")
	b.WriteString(paramsBlock(p))
	b.WriteString("\n")
	if persona := personaClause(p); persona != "" {
		b.WriteString(persona)
		b.WriteString("\n")
	}
	b.WriteString("\nCreate 2-4 characters suitable for this story. ")
	b.WriteString("For each character give a name, a one-sentence appearance and a one-sentence personality. ")
	b.WriteString("Keep every character gentle and age-appropriate.\n")
	b.WriteString(languageClause(p))
	return b.String()
}

// ComposeScenePrompt 组装场景设计阶段的提示词。
// charactersText 原样嵌入，确保场景设计以已生成的角色文本为依据。
func ComposeScenePrompt(p *wfmodel.StoryParams, charactersText string) string {
	var b strings.Builder
	b.WriteString("You are outlining the scenes of a bedtime story for children aged ")
	b.WriteString(strings.TrimSpace(p.AgeGroup))
	b.WriteString(".\n\n")
	b.WriteString(paramsBlock(p))
	b.WriteString("\n")
	if persona := personaClause(p); persona != "" {
		b.WriteString(persona)
		b.WriteString("\n")
	}
	b.WriteString("\nThe story uses these characters:\n\n")
	b.WriteString(charactersText)
	b.WriteString("\n\nOutline 3-5 scenes with a calm arc that winds down towards a soothing ending. ")
	b.WriteString("For each scene give a short setting description and what happens in it.\n")
	b.WriteString(languageClause(p))
	return b.String()
}

// ComposeTitlePrompt 组装标题生成阶段的提示词。
func ComposeTitlePrompt(p *wfmodel.StoryParams, charactersText, scenesText string) string {
	var b strings.Builder
	b.WriteString("Suggest a title for a bedtime story for children aged ")
	b.WriteString(strings.TrimSpace(p.AgeGroup))
	b.WriteString(".\n\n")
	b.WriteString(paramsBlock(p))
	b.WriteString("\nCharacters:\n\n")
	b.WriteString(charactersText)
	b.WriteString("\n\nScenes:\n\n")
	b.WriteString(scenesText)
	b.WriteString("\n\n")
	b.WriteString(titleConstraints(p))
	return b.String()
}

// ComposeStoryPrompt 组装正文生成阶段的提示词。
func ComposeStoryPrompt(p *wfmodel.StoryParams, charactersText, scenesText, title string) string {
	var b strings.Builder
	b.WriteString("Write a bedtime story titled \"")
	b.WriteString(title)
	b.WriteString("\" for children aged ")
	b.WriteString(strings.TrimSpace(p.AgeGroup))
	b.WriteString(".\n\n")
	b.WriteString(paramsBlock(p))
	b.WriteString("\nCharacters:\n\n")
	b.WriteString(charactersText)
	b.WriteString("\n\nScenes:\n\n")
	b.WriteString(scenesText)
	b.WriteString("\n\nWrite the full story following the scenes in order, in a ")
	b.WriteString(strings.TrimSpace(p.Style))
	b.WriteString(" tone that gets calmer towards the end, closing on a peaceful note suitable for falling asleep.")
	if name := strings.TrimSpace(p.FirstName); name != "" {
		b.WriteString(" Make ")
		b.WriteString(name)
		b.WriteString(" the protagonist of the story.")
	}
	b.WriteString("\n")
	b.WriteString(languageClause(p))
	b.WriteString("Return only the story text, with no headings or commentary.\n")
	return b.String()
}

// ComposeAdaptationPrompt 组装正文改编阶段的提示词。
// 约束：保留叙事结构、情节顺序与情感节奏，只改动新参数要求的部分。
func ComposeAdaptationPrompt(originalTitle, originalContent string, from, to *wfmodel.StoryParams) string {
	var b strings.Builder
	b.WriteString("An existing bedtime story needs to be adapted because its parameters changed.\n\n")
	b.WriteString("Original title: ")
	b.WriteString(originalTitle)
	b.WriteString("\n\nOriginal story:\n\n")
	b.WriteString(originalContent)
	b.WriteString("\n\nOriginal parameters:\n")
	b.WriteString(paramsBlock(from))
	b.WriteString("\nNew parameters:\n")
	b.WriteString(paramsBlock(to))
	b.WriteString("\nRewrite the story so it matches the new parameters. ")
	b.WriteString("Preserve the narrative structure, the order of events and the emotional beats of the original; ")
	b.WriteString("change only what the new parameters require.\n")
	b.WriteString(languageClause(to))
	b.WriteString("Return only the adapted story text.\n")
	return b.String()
}

// ComposeAdaptedTitlePrompt 组装改编后标题的提示词。
// 与标题阶段同样的约束，但要求沿用原标题的意象而非另起炉灶。
func ComposeAdaptedTitlePrompt(originalTitle, adaptedContent string, p *wfmodel.StoryParams) string {
	var b strings.Builder
	b.WriteString("A bedtime story was adapted to new parameters and its title may need to follow.\n\n")
	b.WriteString("Original title: ")
	b.WriteString(originalTitle)
	b.WriteString("\n\nAdapted story:\n\n")
	b.WriteString(adaptedContent)
	b.WriteString("\n\n")
	b.WriteString(paramsBlock(p))
	b.WriteString("\nAdapt the concept of the original title to the adapted story; do not invent an unrelated one.\n")
	b.WriteString(titleConstraints(p))
	return b.String()
}

// paramsBlock 渲染参数描述块。
func paramsBlock(p *wfmodel.StoryParams) string {
	var b strings.Builder
	b.WriteString("- Age group: ")
	b.WriteString(strings.TrimSpace(p.AgeGroup))
	b.WriteString("\n- Topic: ")
	b.WriteString(strings.TrimSpace(p.Topic))
	b.WriteString("\n- Subtopic: ")
	b.WriteString(strings.TrimSpace(p.Subtopic))
	b.WriteString("\n- Style: ")
	b.WriteString(strings.TrimSpace(p.Style))
	b.WriteString("\n- Language: ")
	b.WriteString(LanguageName(p.Language))
	b.WriteString("\n")
	return b.String()
}

// personaClause 渲染个性化主角指令。
// 优先级：姓名+性别 > 仅姓名 > 仅性别 > 无。
func personaClause(p *wfmodel.StoryParams) string {
	name := strings.TrimSpace(p.FirstName)
	gender := strings.TrimSpace(p.Gender)
	switch {
	case name != "" && gender != "":
		return fmt.Sprintf("One of the characters must be a %s child named %s, written as the story's protagonist.", gender, name)
	case name != "":
		return fmt.Sprintf("One of the characters must be a child named %s, written as the story's protagonist.", name)
	case gender != "":
		return fmt.Sprintf("One of the characters must be a %s child, written as the story's protagonist.", gender)
	default:
		return ""
	}
}

// titleConstraints 标题阶段的共用约束。
func titleConstraints(p *wfmodel.StoryParams) string {
	var b strings.Builder
	b.WriteString("The title must be 3-8 words, age-appropriate, and reflect the topic, subtopic and style. ")
	b.WriteString("Write it in ")
	b.WriteString(LanguageName(p.Language))
	b.WriteString(". Return only the title, without quotes or explanation.\n")
	return b.String()
}

// languageClause 输出语言指令。
func languageClause(p *wfmodel.StoryParams) string {
	return "Write your answer in " + LanguageName(p.Language) + ".\n"
}
