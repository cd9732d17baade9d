package xeol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omeyang/xtext/pkg/text/xeol"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		target xeol.Style
		want   string
	}{
		{"lf_to_crlf", "l\nm", xeol.CRLF, "l\r\nm"},
		{"mixed_to_lf", "a\r\nb\rc\nd", xeol.LF, "a\nb\nc\nd"},
		{"mixed_to_crlf", "a\r\nb\rc\nd", xeol.CRLF, "a\r\nb\r\nc\r\nd"},
		{"mixed_to_cr", "a\r\nb\rc\nd", xeol.CR, "a\rb\rc\rd"},
		{"empty", "", xeol.LF, ""},
		{"no_terminators", "plain", xeol.CRLF, "plain"},
		{"already_lf", "a\nb\n", xeol.LF, "a\nb\n"},
		{"already_crlf", "a\r\nb\r\n", xeol.CRLF, "a\r\nb\r\n"},
		{"trailing_lone_cr", "abc\r", xeol.LF, "abc\n"},
		{"crlf_to_lf_shrinks", "\r\n\r\n\r\n", xeol.LF, "\n\n\n"},
		{"lf_to_crlf_grows", "\n\n\n", xeol.CRLF, "\r\n\r\n\r\n"},
		{"cr_cr_lf", "\r\r\n", xeol.LF, "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := xeol.Normalize([]byte(tt.in), tt.target)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.want, xeol.NormalizeString(tt.in, tt.target))
		})
	}
}

// TestNormalizeFastPath 验证无需改写时直接返回输入，零分配。
func TestNormalizeFastPath(t *testing.T) {
	// testing.AllocsPerRun panics in parallel tests, so no t.Parallel here.
	in := []byte("a\nb\nc")
	out := xeol.Normalize(in, xeol.LF)
	assert.Same(t, &in[0], &out[0], "fast path must return the input buffer")

	s := "no terminators at all"
	assert.Equal(t, s, xeol.NormalizeString(s, xeol.CRLF))

	allocs := testing.AllocsPerRun(100, func() {
		_ = xeol.Normalize(in, xeol.LF)
	})
	assert.Zero(t, allocs, "fast path must not allocate")
}

// TestNormalizeProperties 验证规范化后的流不再混用且检测结果为目标风格。
func TestNormalizeProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a\r\nb\rc\nd", "\r\r\r", "\n\n", "\r\n", "x", "", "a\rb\r\nc\nd\r",
	}
	targets := []xeol.Style{xeol.LF, xeol.CR, xeol.CRLF}

	for _, in := range inputs {
		for _, target := range targets {
			out := xeol.NormalizeString(in, target)

			assert.False(t, xeol.IsMixed(out), "Normalize(%q, %v) = %q is mixed", in, target, out)
			if style, ok := xeol.Detect(out); ok {
				assert.Equal(t, target, style, "Normalize(%q, %v) = %q", in, target, out)
			}
			// 幂等
			assert.Equal(t, out, xeol.NormalizeString(out, target))
			// 终止符总数保持不变
			c1, r1, l1 := xeol.Count(in)
			c2, r2, l2 := xeol.Count(out)
			assert.Equal(t, c1+r1+l1, c2+r2+l2, "terminator count changed for %q -> %q", in, out)
		}
	}
}
