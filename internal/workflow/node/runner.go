// Package node 提供工作流的可复用执行节点。
package node

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"

	llmctx "dreamtale-api/internal/domain/service"
	workflowport "dreamtale-api/internal/workflow/port"
	"dreamtale-api/pkg/errors"
)

// Runner 生成阶段执行器：一次 Generate 对应一次 ChatModel 调用。
// 不做重试——重试策略如需存在，应作为外层包装，而非塞进编排逻辑。
type Runner struct {
	factory  workflowport.ChatModelFactory
	provider string
}

// NewRunner 创建阶段执行器；provider 为空时使用配置的默认提供商。
func NewRunner(factory workflowport.ChatModelFactory, provider string) *Runner {
	return &Runner{
		factory:  factory,
		provider: strings.TrimSpace(provider),
	}
}

// Generate 以单条用户消息调用 ChatModel 并返回纯文本。
// 空白输出视为生成失败：上游各阶段都依赖非空文本。
func (r *Runner) Generate(ctx context.Context, prompt string) (string, error) {
	if r == nil || r.factory == nil {
		return "", errors.New(errors.CodeLLMProviderError, "llm factory not configured")
	}

	ctx = llmctx.WithProvider(ctx, r.provider)
	chatModel, err := r.factory.Get(ctx, r.provider)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeLLMProviderError, "failed to resolve chat model")
	}

	msg, err := chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeLLMCallFailed, "LLM call failed")
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", errors.New(errors.CodeLLMCallFailed, "empty llm response")
	}
	return strings.TrimSpace(msg.Content), nil
}
