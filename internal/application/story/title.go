package story

import "strings"

// NormalizeTitle 规整标题：去除首尾空白，剥掉成对的包裹引号。
// 幂等：已规整的标题再次规整保持不变，嵌套引号会被逐层剥离。
func NormalizeTitle(raw string) string {
	t := strings.TrimSpace(raw)
	for len(t) >= 2 {
		first, last := t[0], t[len(t)-1]
		if first != last || (first != '"' && first != '\'') {
			break
		}
		t = strings.TrimSpace(t[1 : len(t)-1])
	}
	return t
}
