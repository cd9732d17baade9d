package xascii

// 谓词对 0-255 全域有定义且无副作用：非 ASCII 字节（>= 0x80）
// 对所有肯定性谓词一律返回 false，永不报错。
//
// 每个谓词都有一个未导出的范围算术孪生实现（见文件末尾），
// classify_test.go 对 0-255 逐值对拍两种实现。

// IsDigit 报告 b 是否为十进制数字 '0'-'9'。
func IsDigit(b byte) bool {
	return Classify(b).Has(FlagDigit)
}

// IsUpper 报告 b 是否为大写字母 'A'-'Z'。
func IsUpper(b byte) bool {
	return Classify(b).Has(FlagUpper)
}

// IsLower 报告 b 是否为小写字母 'a'-'z'。
func IsLower(b byte) bool {
	return Classify(b).Has(FlagLower)
}

// IsLetter 报告 b 是否为字母（大写或小写）。
func IsLetter(b byte) bool {
	return Classify(b).Has(FlagUpper | FlagLower)
}

// IsAlphanumeric 报告 b 是否为字母或十进制数字。
func IsAlphanumeric(b byte) bool {
	return Classify(b).Has(FlagDigit | FlagUpper | FlagLower)
}

// IsHexDigit 报告 b 是否为十六进制数字（'0'-'9'、'A'-'F'、'a'-'f'）。
func IsHexDigit(b byte) bool {
	return Classify(b).Has(FlagDigit | FlagHexUpper | FlagHexLower)
}

// IsWhitespace 报告 b 是否为 ASCII 空白字符（TAB、LF、CR、SPACE）。
func IsWhitespace(b byte) bool {
	return Classify(b).Has(FlagWhitespace)
}

// IsControl 报告 b 是否为控制字符（0x00-0x1F 或 DEL）。
func IsControl(b byte) bool {
	return Classify(b).Has(FlagControl)
}

// IsPrintable 报告 b 是否为可打印字符（0x20-0x7E，含 SPACE）。
func IsPrintable(b byte) bool {
	return Classify(b).Has(FlagPrintable)
}

// IsVisible 报告 b 是否为可见字符（0x21-0x7E，不含 SPACE）。
func IsVisible(b byte) bool {
	return Classify(b).Has(FlagPrintable) && b != ' '
}

// All 报告 s 的每个字节是否都满足 pred。
// 空输入返回 true（空集上的全称命题恒真）。
func All[T ~string | ~[]byte](s T, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

// Contains 报告 s 中是否存在满足 pred 的字节。
// 空输入返回 false。
func Contains[T ~string | ~[]byte](s T, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if pred(s[i]) {
			return true
		}
	}
	return false
}

// 以下为范围算术孪生实现。inRange 利用无符号回绕减法把
// 双端区间判断压缩为单次比较：b < lo 时 b-lo 回绕为大数。

func inRange(b, lo, hi byte) bool {
	return b-lo < hi-lo+1
}

func rangeIsDigit(b byte) bool   { return inRange(b, '0', '9') }
func rangeIsUpper(b byte) bool   { return inRange(b, 'A', 'Z') }
func rangeIsLower(b byte) bool   { return inRange(b, 'a', 'z') }
func rangeIsLetter(b byte) bool  { return rangeIsUpper(b) || rangeIsLower(b) }
func rangeIsControl(b byte) bool { return b <= 0x1f || b == 0x7f }

func rangeIsAlphanumeric(b byte) bool { return rangeIsDigit(b) || rangeIsLetter(b) }
func rangeIsPrintable(b byte) bool    { return inRange(b, 0x20, 0x7e) }
func rangeIsVisible(b byte) bool      { return inRange(b, 0x21, 0x7e) }

func rangeIsHexDigit(b byte) bool {
	return rangeIsDigit(b) || inRange(b, 'A', 'F') || inRange(b, 'a', 'f')
}

func rangeIsWhitespace(b byte) bool {
	switch b {
	case '\t', '\n', '\r', ' ':
		return true
	}
	return false
}
