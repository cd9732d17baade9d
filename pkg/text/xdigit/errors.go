package xdigit

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空。
	ErrEmpty = errors.New("xdigit: empty input")

	// ErrSyntax 表示输入含有不合语法的字节（非数字，或符号后无数字）。
	ErrSyntax = errors.New("xdigit: invalid syntax")

	// ErrRange 表示数值超出目标整型的表示范围。
	ErrRange = errors.New("xdigit: value out of range")
)
