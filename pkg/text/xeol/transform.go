package xeol

import "golang.org/x/text/transform"

// Normalizer 是流式行终止符规范化器，实现 [transform.Transformer]。
// 语义与 [Normalize] 一致，并正确处理跨块边界的 CRLF：
// 非末块结尾的 CR 可能是 CRLF 的前半，此时返回
// [transform.ErrShortSrc] 等待更多输入。
//
// Normalizer 无内部状态，[transform.NopResetter] 即满足 Reset 契约，
// 同一实例可复用，但不可多协程并发使用（Transformer 接口的通用约束）。
type Normalizer struct {
	transform.NopResetter

	target Style
}

var _ transform.Transformer = (*Normalizer)(nil)

// NewNormalizer 创建把行终止符统一为 target 风格的流式转换器。
//
//	r := transform.NewReader(src, xeol.NewNormalizer(xeol.LF))
func NewNormalizer(target Style) *Normalizer {
	return &Normalizer{target: target}
}

// Transform 实现 [transform.Transformer]。
func (n *Normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	seq := n.target.Sequence()
	for nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r':
			width := 1
			if nSrc+1 < len(src) {
				if src[nSrc+1] == '\n' {
					width = 2
				}
			} else if !atEOF {
				// 块末尾的 CR：等待下一块才能确定是否为 CRLF
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst+len(seq) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], seq)
			nSrc += width
		case '\n':
			if nDst+len(seq) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], seq)
			nSrc++
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
		}
	}
	return nDst, nSrc, nil
}
