package xascii

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

// FuzzValid 对拍批量验证与逐字节验证，并检查 IndexNonASCII 的一致性。
func FuzzValid(f *testing.F) {
	seeds := [][]byte{
		nil,
		[]byte(""),
		[]byte("plain ascii text"),
		[]byte{0x80},
		[]byte("aaaaaaa\xff"),
		[]byte("12345678\x80tail"),
		bytes.Repeat([]byte{0x7f}, 33),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		scalar := true
		first := -1
		for i, b := range data {
			if b >= 0x80 {
				scalar = false
				first = i
				break
			}
		}

		if got := Valid(data); got != scalar {
			t.Errorf("Valid = %v, scalar = %v on %x", got, scalar, data)
		}
		if got := ValidString(string(data)); got != scalar {
			t.Errorf("ValidString = %v, scalar = %v on %x", got, scalar, data)
		}
		if got := IndexNonASCII(data); got != first {
			t.Errorf("IndexNonASCII = %d, want %d on %x", got, first, data)
		}
	})
}

// FuzzConvertString 验证大小写转换保持长度、保持 UTF-8 有效性，
// 且往返后与直接小写化一致。
func FuzzConvertString(f *testing.F) {
	seeds := []string{"", "Hello", "héllo wörld", "MIXED case 42", "日本語abc"}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		up := ToUpperString(s)
		if len(up) != len(s) {
			t.Fatalf("length changed: %d -> %d", len(s), len(up))
		}
		if utf8.ValidString(s) && !utf8.ValidString(up) {
			t.Fatalf("conversion broke UTF-8 validity: %q -> %q", s, up)
		}
		if got, want := ToLowerString(up), ToLowerString(s); got != want {
			t.Fatalf("fold mismatch: %q vs %q", got, want)
		}
		// 幂等
		if ToUpperString(up) != up {
			t.Fatalf("ToUpperString not idempotent on %q", s)
		}
	})
}

// FuzzTrimSpace 验证修剪结果是原输入的子串且首尾无空白。
func FuzzTrimSpace(f *testing.F) {
	seeds := []string{"", "  a  ", "\r\nx\r\n", " \t ", "no trim"}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		out := TrimSpace(s)
		if len(out) > 0 {
			if IsWhitespace(out[0]) || IsWhitespace(out[len(out)-1]) {
				t.Fatalf("TrimSpace(%q) = %q still has edge whitespace", s, out)
			}
		}
		if !bytes.Contains([]byte(s), []byte(out)) {
			t.Fatalf("TrimSpace(%q) = %q is not a substring", s, out)
		}
		// 幂等
		if TrimSpace(out) != out {
			t.Fatalf("TrimSpace not idempotent on %q", s)
		}
	})
}
