package xascii

import (
	"encoding/binary"
	"math/bits"
)

// 每个字节的高位掩码：任一位非零即存在 >= 0x80 的字节。
const asciiMask uint64 = 0x8080808080808080

// Valid 报告 s 是否全部由 ASCII 字节（<= 0x7F）组成。
// 空输入有效。快速路径按 8 字节一组整字检测高位，
// 发现越界字节立即短路；剩余 0-7 字节逐字节检查。
func Valid(s []byte) bool {
	for len(s) >= 8 {
		if binary.LittleEndian.Uint64(s)&asciiMask != 0 {
			return false
		}
		s = s[8:]
	}
	for _, b := range s {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// ValidString 报告 s 是否全部由 ASCII 字节组成。
// 与 [Valid] 等价的字符串版本，不复制输入。
func ValidString(s string) bool {
	for len(s) >= 8 {
		w := uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
			uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
		if w&asciiMask != 0 {
			return false
		}
		s = s[8:]
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IndexNonASCII 返回 s 中第一个非 ASCII 字节（>= 0x80）的下标，
// 全部为 ASCII 时返回 -1。
func IndexNonASCII(s []byte) int {
	i := 0
	for ; len(s)-i >= 8; i += 8 {
		// 小端序下最低非零的 0x80 位对应最靠前的越界字节
		if w := binary.LittleEndian.Uint64(s[i:]) & asciiMask; w != 0 {
			return i + bits.TrailingZeros64(w)/8
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}
