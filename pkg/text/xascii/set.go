package xascii

// Set 表示一组 ASCII 字节的 128 位位集合。
//
// Set 是不可变值类型：零值为空集，可直接比较（==）和用作 map key，
// 并发安全，无需加锁。
type Set struct {
	bits [2]uint64
}

// MakeSet 由 chars 中的字节构建集合。
// 非 ASCII 字节（>= 0x80）被忽略：本集合只表达 ASCII 成员关系。
func MakeSet(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c >= 0x80 {
			continue
		}
		s.bits[c>>6] |= 1 << (c & 63)
	}
	return s
}

// Contains 报告 c 是否在集合中。非 ASCII 字节恒为 false。
func (s Set) Contains(c byte) bool {
	return c < 0x80 && s.bits[c>>6]&(1<<(c&63)) != 0
}

// IsEmpty 报告集合是否为空。
func (s Set) IsEmpty() bool {
	return s.bits == [2]uint64{}
}

// Union 返回 s 与 t 的并集。
func (s Set) Union(t Set) Set {
	return Set{bits: [2]uint64{s.bits[0] | t.bits[0], s.bits[1] | t.bits[1]}}
}

// whitespaceSet 是规范 ASCII 空白集合（TAB、LF、CR、SPACE）。
var whitespaceSet = MakeSet(" \t\n\r")

// WhitespaceSet 返回规范 ASCII 空白集合，与 [IsWhitespace] 的定义一致。
func WhitespaceSet() Set {
	return whitespaceSet
}
