package port

import "context"

// TextGenerator 定义生成阶段对文本生成能力的最小依赖（port）。
// 一次调用对应一次外部生成请求；不保证确定性，不做重试。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
